package mining

import (
	"context"

	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/inventory"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/target"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// State представляет состояние конечного автомата добычи
type State interface {
	Enter(c *Controller)
	Update(c *Controller, dt float64) State
	Exit(c *Controller)
}

// Params — настройки времени разрушения
type Params struct {
	BaseTime float64 // Базовое время разрушения, сек
	MinTime  float64 // Нижняя граница времени разрушения, сек
}

// DefaultParams возвращает параметры по умолчанию
func DefaultParams() Params {
	return Params{BaseTime: 0.8, MinTime: 0.15}
}

// Controller — конечный автомат прогрессивного разрушения блока.
// Idle — начальное и промежуточное состояние; Breaking живёт только пока
// удерживается разрушение и цель не менялась.
type Controller struct {
	world  *world.VoxelWorld
	inv    *inventory.Store
	params Params

	state State
}

// NewController создаёт контроллер добычи в состоянии Idle
func NewController(w *world.VoxelWorld, inv *inventory.Store, params Params) *Controller {
	c := &Controller{
		world:  w,
		inv:    inv,
		params: params,
		state:  &IdleState{},
	}
	return c
}

// IsBreaking возвращает true, если идёт разрушение блока
func (c *Controller) IsBreaking() bool {
	_, breaking := c.state.(*BreakingState)
	return breaking
}

// Progress возвращает видимую долю готовности разрушения [0, 1]
// для оверлея трещин. На корректность логики не влияет.
func (c *Controller) Progress() float64 {
	if bs, ok := c.state.(*BreakingState); ok {
		ratio := bs.Progress / bs.Required
		if ratio > 1 {
			return 1
		}
		return ratio
	}
	return 0
}

// CurrentTarget возвращает позицию разрушаемого блока, если идёт разрушение
func (c *Controller) CurrentTarget() (vec.Vec3, bool) {
	if bs, ok := c.state.(*BreakingState); ok {
		return bs.Target.BreakPos, true
	}
	return vec.Vec3{}, false
}

// StartBreaking пытается начать разрушение прицельного блока.
// Возвращает false без смены состояния, если цели нет или выбранный слот
// не удовлетворяет требованию блока по классу инструмента.
func (c *Controller) StartBreaking(t target.Target, ok bool) bool {
	if !ok {
		return false
	}

	def, exists := block.Get(t.Block)
	if !exists {
		return false
	}

	tool, hasTool := c.inv.SelectedTool()

	// Блок с требованием инструмента не ломается неподходящим предметом
	if def.Tool != block.ToolClassNone {
		if !hasTool || tool.Class != def.Tool {
			logging.Debug("Mining: %s требует инструмент класса %d", def.Name, def.Tool)
			return false
		}
	}

	// Эффективность — 1, если подходящего инструмента нет
	efficiency := 1.0
	if hasTool && def.Tool != block.ToolClassNone && tool.Class == def.Tool {
		efficiency = tool.Efficiency
	}

	required := c.params.BaseTime * def.Hardness / efficiency
	if required < c.params.MinTime {
		required = c.params.MinTime
	}

	c.setState(&BreakingState{Target: t, Required: required})
	return true
}

// Update продвигает разрушение на dt секунд.
// current/ok — цель, разрешённая в этом тике: её смена или потеря
// отменяет разрушение (новое разрушение требует нового нажатия).
func (c *Controller) Update(dt float64, current target.Target, ok bool) {
	bs, breaking := c.state.(*BreakingState)
	if !breaking {
		return
	}

	// Потеря или смена цели — только отмена, без авто-рестарта
	if !ok || !current.BreakPos.Equals(bs.Target.BreakPos) || current.Block != bs.Target.Block {
		c.StopBreaking()
		return
	}

	if next := c.state.Update(c, dt); next != c.state {
		c.setState(next)
	}
}

// StopBreaking отменяет текущее разрушение, сбрасывая прогресс.
// Вызывается при отпускании кнопки, потере цели, потере фокуса и teardown.
func (c *Controller) StopBreaking() {
	if !c.IsBreaking() {
		return
	}
	c.setState(&IdleState{})
}

// Dispose останавливает автомат. Повторные вызовы безопасны.
func (c *Controller) Dispose() {
	c.StopBreaking()
}

func (c *Controller) setState(next State) {
	if c.state != nil {
		c.state.Exit(c)
	}
	c.state = next
	if c.state != nil {
		c.state.Enter(c)
	}
}

// === Конкретные состояния ===

// IdleState — разрушение не идёт
type IdleState struct{}

func (s *IdleState) Enter(c *Controller)                   {}
func (s *IdleState) Update(c *Controller, dt float64) State { return s }
func (s *IdleState) Exit(c *Controller)                    {}

// BreakingState — прогрессивное разрушение одного блока
type BreakingState struct {
	Target   target.Target
	Required float64 // Требуемое время, сек
	Progress float64 // Накопленное время, сек
}

func (s *BreakingState) Enter(c *Controller) {
	logging.Trace("Mining: начато разрушение %v (%.2fс)", s.Target.BreakPos, s.Required)
}

func (s *BreakingState) Update(c *Controller, dt float64) State {
	s.Progress += dt
	if s.Progress < s.Required {
		return s
	}

	// Завершение: блок удаляется из мира, одна единица типа — в инвентарь
	pos := s.Target.BreakPos
	id := s.Target.Block
	def, _ := block.Get(id)

	c.world.RemoveBlockAt(pos)

	item := block.ItemFromBlock(id)
	if leftover := c.inv.AddItem(item, 1); leftover > 0 {
		logging.Warn("Mining: инвентарь полон, добытый %s потерян", def.Name)
	} else {
		eventbus.Publish(context.Background(), eventbus.NewItemGrantedEvent("mining", def.Name, 1))
	}

	eventbus.Publish(context.Background(), eventbus.NewBlockBrokenEvent("mining", pos, def.Name))
	logging.Debug("Mining: разрушен %s в %v", def.Name, pos)

	return &IdleState{}
}

func (s *BreakingState) Exit(c *Controller) {}
