package metrics

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/annel0/voxel-sandbox/internal/logging"
)

// PerfProbe собирает метрики процесса демо
type PerfProbe struct {
	StartTime time.Time
	quit      chan struct{}
	done      chan struct{}
	started   bool
}

// NewPerfProbe создает новый экземпляр метрик процесса
func NewPerfProbe() *PerfProbe {
	return &PerfProbe{
		StartTime: time.Now(),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// GetUptime возвращает время работы демо
func (p *PerfProbe) GetUptime() string {
	uptime := time.Since(p.StartTime)

	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	}
	return fmt.Sprintf("%dс", seconds)
}

// GetMemoryUsage возвращает использование памяти в MB
func (p *PerfProbe) GetMemoryUsage() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// Преобразуем байты в мегабайты
	return float64(m.Alloc) / 1024 / 1024
}

// GetCPUUsage возвращает использование CPU процессом в процентах
func (p *PerfProbe) GetCPUUsage() (float64, error) {
	pid := int32(os.Getpid())
	proc, err := process.NewProcess(pid)
	if err != nil {
		return 0, err
	}

	// Получаем процент использования CPU за последний интервал
	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		// Если не удалось получить метрику процесса, попробуем системную
		cpuPercents, err := cpu.Percent(100*time.Millisecond, false)
		if err != nil || len(cpuPercents) == 0 {
			return 0, err
		}
		return cpuPercents[0], nil
	}

	return cpuPercent, nil
}

// Start запускает периодический perf-лог с указанным интервалом
func (p *PerfProbe) Start(interval time.Duration) {
	if p.started {
		return
	}
	p.started = true
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cpuPct, err := p.GetCPUUsage()
				if err != nil {
					cpuPct = 0
				}
				logging.Info("⏱️ Perf: uptime=%s mem=%.1fMB cpu=%.1f%% goroutines=%d",
					p.GetUptime(), p.GetMemoryUsage(), cpuPct, runtime.NumGoroutine())
			case <-p.quit:
				return
			}
		}
	}()
}

// Stop останавливает perf-лог и дожидается завершения горутины.
// Повторные вызовы безопасны.
func (p *PerfProbe) Stop() {
	if !p.started {
		return
	}
	select {
	case <-p.quit:
		// Уже остановлен
	default:
		close(p.quit)
		<-p.done
	}
}
