package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-sandbox/internal/config"
	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/game"
	"github.com/annel0/voxel-sandbox/internal/input"
	"github.com/annel0/voxel-sandbox/internal/inventory"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/annel0/voxel-sandbox/internal/mining"
	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/gen"
)

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("sandbox"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🧱 Запуск Voxel Sandbox...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	// === ШИНА СОБЫТИЙ ===
	bus := eventbus.NewMemoryBus(256)
	eventbus.Init(bus)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Warn("Не удалось запустить лог-подписчика шины: %v", err)
	}

	// === МЕТРИКИ ===
	sim := metrics.NewSimMetrics(nil)
	metricsSrv := metrics.ServeEndpoint(cfg.Metrics.GetPort())
	probe := metrics.NewPerfProbe()
	probe.Start(time.Duration(cfg.Metrics.GetPerfInterval()) * time.Second)

	// === МИР ===
	scene := render.NewHeadlessScene()
	w := world.NewVoxelWorld(scene)
	gen.NewGenerator(cfg.World.GetSeed(), cfg.World.GetRadius(), cfg.World.GetGroundLevel()).Populate(w)

	// === ИГРОВЫЕ КОМПОНЕНТЫ ===
	inv := inventory.NewStore(cfg.Hotbar.GetSize())
	in := input.NewState()

	spawn := vec.Vec3Float{
		X: 0.5,
		Y: float64(cfg.World.GetGroundLevel()) + 3 + physics.EyeHeight,
		Z: 0.5,
	}
	phys := physics.NewController(w, physics.Params{
		Gravity:     cfg.Physics.GetGravity(),
		JumpForce:   cfg.Physics.GetJumpForce(),
		WalkSpeed:   cfg.Physics.GetWalkSpeed(),
		SprintSpeed: cfg.Physics.GetSprintSpeed(),
		SubSteps:    cfg.Physics.GetSubSteps(),
	}, spawn)

	miner := mining.NewController(w, inv, mining.Params{
		BaseTime: cfg.Mining.GetBaseTime(),
		MinTime:  cfg.Mining.GetMinTime(),
	})

	loop := game.New(scene, w, inv, in, phys, miner, sim)

	// === ЗАПУСК ===
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logging.Info("Получен сигнал завершения...")
		cancel()
	}()

	runDemo(ctx, loop)

	// === TEARDOWN ===
	loop.Dispose()
	probe.Stop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	bus.Close()
	_ = logging.GetLoggerManager().CloseAll()

	logging.Info("👋 Voxel Sandbox остановлен")
}

// runDemo проигрывает демонстрационный сценарий поверх Loop.Run:
// без устройства ввода события клавиатуры и мыши подаются скриптом
// через кадровый хук (из потока симуляции, без реентерабельности).
func runDemo(ctx context.Context, loop *game.Loop) {
	script := demoScript(loop)
	loop.Run(ctx, 60, func(frame int) {
		if action, exists := script[frame]; exists {
			action()
		}
	})
}

// demoScript возвращает действия сценария по номерам кадров
func demoScript(loop *game.Loop) map[int]func() {
	in := loop.Input()
	return map[int]func(){
		// Выдаём себе кирку и камень через консоль
		30: func() {
			entry := loop.SubmitCommand("/give pickaxe")
			logging.Info("💬 %s", entry.Message)
		},
		40: func() {
			entry := loop.SubmitCommand("/give stone 10")
			logging.Info("💬 %s", entry.Message)
		},
		// Идём вперёд с ускорением
		60:  func() { in.KeyDown(input.KeyW) },
		90:  func() { in.KeyDown(input.KeyLeftShift) },
		150: func() { in.KeyUp(input.KeyW); in.KeyUp(input.KeyLeftShift) },
		// Прыжок
		160: func() { in.KeyDown(input.KeySpace) },
		165: func() { in.KeyUp(input.KeySpace) },
		// Смотрим под ноги и копаем
		200: func() {
			loop.Player().Pitch = -1.2
			in.KeyDown(input.Key1)
			in.MouseDown(input.MouseLeft)
		},
		320: func() { in.MouseUp(input.MouseLeft) },
		// Ставим блок обратно
		340: func() { in.MouseDown(input.MouseRight) },
		341: func() { in.MouseUp(input.MouseRight) },
		360: func() {
			stats := loop.World().Size()
			logging.Info("📦 Блоков в мире: %d, выбранный слот: %d", stats, loop.Inventory().Selected())
		},
	}
}
