package game

import (
	"context"
	"time"

	"github.com/annel0/voxel-sandbox/internal/command"
	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/input"
	"github.com/annel0/voxel-sandbox/internal/inventory"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/annel0/voxel-sandbox/internal/mining"
	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/target"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Loop — оркестратор симуляции. Владеет всеми изменяемыми состояниями
// (мир, инвентарь, физика, ввод, добыча) и передаёт их подсистемам по
// ссылке. Порядок внутри тика фиксирован: снимок ввода, физика, добыча,
// финальное перенаведение для обратной связи рендера.
//
// Однопоточная кооперативная модель: Tick вызывается один раз на кадр,
// ничего не блокирует; мир и инвентарь мутируются только отсюда.
type Loop struct {
	scene    render.Scene
	world    *world.VoxelWorld
	inv      *inventory.Store
	input    *input.State
	phys     *physics.Controller
	resolver *target.Resolver
	miner    *mining.Controller
	interp   *command.Interpreter
	sim      *metrics.SimMetrics

	busSub eventbus.Subscription

	// Последняя разрешённая цель — снимок для слоёв UI
	lastTarget   target.Target
	lastTargetOK bool

	disposed bool
}

// New собирает игровой цикл из готовых компонентов.
// sim может быть nil — тогда метрики не записываются.
func New(scene render.Scene, w *world.VoxelWorld, inv *inventory.Store,
	in *input.State, phys *physics.Controller, miner *mining.Controller,
	sim *metrics.SimMetrics) *Loop {

	l := &Loop{
		scene:    scene,
		world:    w,
		inv:      inv,
		input:    in,
		phys:     phys,
		resolver: target.NewResolver(scene, phys),
		miner:    miner,
		interp:   command.NewInterpreter(inv),
		sim:      sim,
	}

	// Счётчик разрушенных блоков питается событиями шины
	if sim != nil {
		if sub, err := eventbus.Subscribe(eventbus.Filter{Types: []string{eventbus.EventBlockBroken}},
			func(ctx context.Context, ev *eventbus.Envelope) { sim.IncBlocksBroken() }); err == nil {
			l.busSub = sub
		}
	}

	return l
}

// Input возвращает состояние ввода (для трансляции событий устройств)
func (l *Loop) Input() *input.State { return l.input }

// Player возвращает физический контроллер игрока
func (l *Loop) Player() *physics.Controller { return l.phys }

// Inventory возвращает инвентарь
func (l *Loop) Inventory() *inventory.Store { return l.inv }

// World возвращает воксельный мир
func (l *Loop) World() *world.VoxelWorld { return l.world }

// CurrentTarget возвращает цель, разрешённую в конце последнего тика
func (l *Loop) CurrentTarget() (target.Target, bool) {
	return l.lastTarget, l.lastTargetOK
}

// MiningProgress возвращает долю готовности разрушения для оверлея
func (l *Loop) MiningProgress() float64 {
	return l.miner.Progress()
}

// Tick продвигает симуляцию на dt секунд
func (l *Loop) Tick(dt float64) {
	if l.disposed {
		return
	}
	started := time.Now()

	// 1. Снимок намерений: edge-события потребляются ровно один раз
	snap := l.input.Snapshot()

	// 2. Выбор слота хотбара
	if snap.SelectSlot >= 0 {
		l.inv.SelectSlot(snap.SelectSlot)
	}
	if snap.ScrollDelta != 0 {
		l.inv.ScrollSelection(snap.ScrollDelta)
	}

	// 3. Физика
	l.phys.Step(dt, snap)

	// 4. Наведение после перемещения
	t, ok := l.resolver.Resolve(l.phys.Pos, l.phys.LookDir())

	// 5. Добыча: отмена синхронна с отпусканием кнопки и открытием консоли —
	// состояние Breaking не переживает границу тика без удержания
	if snap.BreakEnd || snap.ConsoleOpen {
		l.miner.StopBreaking()
	}
	if snap.BreakStart {
		l.miner.StartBreaking(t, ok)
	}
	l.miner.Update(dt, t, ok)

	// 6. Установка блока
	if snap.Place {
		l.tryPlace(t, ok)
	}

	// 7. Финальное перенаведение для обратной связи рендера:
	// добыча могла удалить прицельный блок
	l.lastTarget, l.lastTargetOK = l.resolver.Resolve(l.phys.Pos, l.phys.LookDir())

	if l.sim != nil {
		l.sim.ObserveTick(time.Since(started))
		l.sim.SetWorldBlocks(l.world.Size())
	}
}

// tryPlace ставит блок из выбранного слота в прицельную позицию.
// Отклонённые установки (нет цели, пересечение с игроком, в руке не блок,
// позиция занята) — не ошибка, состояние остаётся согласованным.
func (l *Loop) tryPlace(t target.Target, ok bool) {
	if !ok || !t.PlaceOK {
		return
	}

	stack := l.inv.SelectedStack()
	if stack == nil || !stack.Item.IsBlock() {
		return
	}

	id := stack.Item.AsBlock()
	if !l.world.AddBlockAt(t.PlacePos, id) {
		return
	}

	l.inv.ConsumeSelected(1)
	if def, exists := block.Get(id); exists {
		eventbus.Publish(context.Background(), eventbus.NewBlockPlacedEvent("game", t.PlacePos, def.Name))
	}
	if l.sim != nil {
		l.sim.IncBlocksPlaced()
	}
}

// SubmitCommand выполняет строку консоли и закрывает консоль
func (l *Loop) SubmitCommand(text string) command.LogEntry {
	entry := l.interp.Execute(text)
	l.input.CloseConsole()
	return entry
}

// FocusLost обрабатывает потерю фокуса/pointer-lock: разрушение
// отменяется в этом же тике, уровневые флаги сбрасываются.
func (l *Loop) FocusLost() {
	l.input.FocusLost()
	l.miner.StopBreaking()
}

// Run крутит цикл реального времени до отмены контекста.
// dt измеряется и ограничивается сверху, чтобы пауза процесса не
// превращалась в гигантский шаг интеграции.
//
// onFrame (опционально) вызывается перед каждым тиком с номером кадра
// из потока симуляции: сюда подаются события устройств или сценария
// без реентерабельности обработчиков.
func (l *Loop) Run(ctx context.Context, tickRate int, onFrame func(frame int)) {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	const maxDt = 0.1

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	frame := 0
	logging.Info("🎮 Игровой цикл запущен: %d тиков/с", tickRate)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Игровой цикл остановлен")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxDt {
				dt = maxDt
			}
			if onFrame != nil {
				onFrame(frame)
			}
			l.Tick(dt)
			frame++
		}
	}
}

// Dispose освобождает ресурсы цикла ровно один раз:
// автомат добычи, подписку на шину, визуальные хэндлы мира и сцену.
func (l *Loop) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true

	l.miner.Dispose()
	if l.busSub != nil {
		l.busSub.Unsubscribe()
		l.busSub = nil
	}
	l.world.Dispose()
	if l.scene != nil {
		l.scene.Dispose()
	}
	logging.Info("Loop: ресурсы освобождены")
}
