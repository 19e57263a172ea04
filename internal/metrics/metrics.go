package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-sandbox/internal/logging"
)

// SimMetrics инкапсулирует Prometheus-метрики цикла симуляции.
//
// Метрики:
// * sandbox_tick_duration_seconds — histogram длительности тика
// * sandbox_blocks_broken_total   — counter разрушенных блоков
// * sandbox_blocks_placed_total   — counter установленных блоков
// * sandbox_world_blocks          — gauge числа блоков в мире
type SimMetrics struct {
	tickDuration prometheus.Histogram
	blocksBroken prometheus.Counter
	blocksPlaced prometheus.Counter
	worldBlocks  prometheus.Gauge
}

// NewSimMetrics создаёт метрики и регистрирует их в указанном регистре.
// nil означает дефолтный регистр Prometheus.
func NewSimMetrics(reg prometheus.Registerer) *SimMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &SimMetrics{
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sandbox",
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика симуляции.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		blocksBroken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "blocks_broken_total",
			Help:      "Общее число разрушенных блоков.",
		}),
		blocksPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "blocks_placed_total",
			Help:      "Общее число установленных блоков.",
		}),
		worldBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sandbox",
			Name:      "world_blocks",
			Help:      "Текущее количество блоков в мире.",
		}),
	}

	reg.MustRegister(m.tickDuration, m.blocksBroken, m.blocksPlaced, m.worldBlocks)
	return m
}

// ObserveTick фиксирует длительность тика
func (m *SimMetrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// IncBlocksBroken увеличивает счётчик разрушенных блоков
func (m *SimMetrics) IncBlocksBroken() { m.blocksBroken.Inc() }

// IncBlocksPlaced увеличивает счётчик установленных блоков
func (m *SimMetrics) IncBlocksPlaced() { m.blocksPlaced.Inc() }

// SetWorldBlocks обновляет gauge числа блоков
func (m *SimMetrics) SetWorldBlocks(n int) { m.worldBlocks.Set(float64(n)) }

// ServeEndpoint запускает HTTP-сервер с /metrics на указанном порту.
// Возвращает сервер для graceful shutdown.
func ServeEndpoint(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Metrics: ошибка HTTP-сервера: %v", err)
		}
	}()
	logging.Info("📊 Prometheus метрики: http://localhost:%d/metrics", port)
	return srv
}
