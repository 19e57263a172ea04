package physics

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/input"
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Геометрия игрока и константы интеграции.
// Набор констант единый для всего демо; авто-шаг использует пробу
// ровно на один блок вверх.
const (
	PlayerWidth = 0.6 // Ширина бокса по X и Z
	HalfWidth   = PlayerWidth / 2
	BodyHeight  = 1.7 // Высота бокса от ступней
	EyeHeight   = 1.6 // Высота глаз от ступней (камера чуть ниже верха бокса)

	Accel       = 45.0 // Горизонтальное ускорение, блоков/с²
	GroundDecay = 10.0 // Коэффициент экспоненциального трения на земле
	AirDecay    = 2.0  // Коэффициент трения в воздухе (слабее)

	StepProbeHeight = 1.0  // Высота пробы авто-шага, блоков
	StepBoostFactor = 0.9  // Доля импульса прыжка при авто-шаге; хватает на подъём в один блок
	StepNudge       = 0.01 // Вертикальный сдвиг при авто-шаге

	AirPadding   = 0.05 // Расширение бокса в полёте против туннелирования
	GroundShrink = 0.05 // Подъём нижней грани на земле против ложных задеваний пола
)

// Params — настраиваемые параметры движения (из конфига)
type Params struct {
	Gravity     float64
	JumpForce   float64
	WalkSpeed   float64
	SprintSpeed float64
	SubSteps    int
}

// DefaultParams возвращает параметры по умолчанию
func DefaultParams() Params {
	return Params{
		Gravity:     32.0,
		JumpForce:   9.8,
		WalkSpeed:   4.3,
		SprintSpeed: 5.6,
		SubSteps:    5,
	}
}

// Controller интегрирует позицию и скорость игрока против воксельного мира.
// Pos — позиция глаз (камеры); ступни находятся на EyeHeight ниже.
// Все поля мутируются только потоком симуляции.
type Controller struct {
	params Params
	world  BlockChecker

	Pos      vec.Vec3Float
	Vel      vec.Vec3Float
	Grounded bool

	// Ориентация камеры, радианы. Yaw 0 — взгляд вдоль -Z.
	Yaw   float64
	Pitch float64
}

// NewController создаёт контроллер в указанной стартовой позиции глаз
func NewController(world BlockChecker, params Params, start vec.Vec3Float) *Controller {
	if params.SubSteps <= 0 {
		params.SubSteps = 5
	}
	return &Controller{
		params: params,
		world:  world,
		Pos:    start,
	}
}

// Box возвращает текущий бокс игрока
func (c *Controller) Box() AABB {
	return c.boxAt(c.Pos)
}

func (c *Controller) boxAt(eye vec.Vec3Float) AABB {
	feet := eye.Y - EyeHeight
	return AABB{
		MinX: eye.X - HalfWidth, MinY: feet, MinZ: eye.Z - HalfWidth,
		MaxX: eye.X + HalfWidth, MaxY: feet + BodyHeight, MaxZ: eye.Z + HalfWidth,
	}
}

// OverlapsVoxel проверяет, пересекает ли бокс игрока указанный воксель.
// Используется при установке блоков: нельзя поставить блок в себя.
func (c *Controller) OverlapsVoxel(v vec.Vec3) bool {
	return c.Box().OverlapsVoxel(v)
}

// LookDir возвращает единичный вектор направления взгляда камеры
func (c *Controller) LookDir() vec.Vec3Float {
	cp := math.Cos(c.Pitch)
	return vec.Vec3Float{
		X: -math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// Step продвигает симуляцию игрока на dt секунд по снимку намерений.
// Порядок фиксирован: гравитация, трение и разгон, прыжок, интеграция
// подшагами с поосевым разрешением коллизий (Y, затем X, затем Z).
func (c *Controller) Step(dt float64, snap input.Snapshot) {
	if dt <= 0 {
		return
	}

	// 1. Гравитация
	c.Vel.Y -= c.params.Gravity * dt

	// 2. Горизонтальное движение (консоль блокирует управление)
	if !snap.MovementLocked {
		c.applyFriction(dt)
		c.applyAcceleration(dt, snap)
		c.clampHorizontal(snap.Sprint)

		// 3. Прыжок: только с земли, одно нажатие — один прыжок
		if snap.Jump && c.Grounded {
			c.Vel.Y = c.params.JumpForce
		}
	}

	// 4. Интеграция подшагами
	sub := 1.0 / float64(c.params.SubSteps)
	groundedAny := false
	for i := 0; i < c.params.SubSteps; i++ {
		c.resolveY(c.Vel.Y * dt * sub)
		c.resolveHorizontal(&c.Pos.X, &c.Vel.X, c.Vel.X*dt*sub, axisX)
		c.resolveHorizontal(&c.Pos.Z, &c.Vel.Z, c.Vel.Z*dt*sub, axisZ)
		if c.Grounded {
			groundedAny = true
		}
	}

	// 5. Флаг опоры на следующий тик — OR по подшагам
	c.Grounded = groundedAny
}

func (c *Controller) applyFriction(dt float64) {
	decay := AirDecay
	if c.Grounded {
		decay = GroundDecay
	}
	factor := math.Exp(-decay * dt)
	c.Vel.X *= factor
	c.Vel.Z *= factor
}

func (c *Controller) applyAcceleration(dt float64, snap input.Snapshot) {
	var axisF, axisR float64
	if snap.Forward {
		axisF++
	}
	if snap.Back {
		axisF--
	}
	if snap.Right {
		axisR++
	}
	if snap.Left {
		axisR--
	}
	if axisF == 0 && axisR == 0 {
		return
	}

	forward := vec.Vec3Float{X: -math.Sin(c.Yaw), Z: -math.Cos(c.Yaw)}
	right := vec.Vec3Float{X: math.Cos(c.Yaw), Z: -math.Sin(c.Yaw)}

	// Нормализация до масштабирования: диагональ не быстрее осей
	wish := forward.Mul(axisF).Add(right.Mul(axisR)).Normalized()
	c.Vel.X += wish.X * Accel * dt
	c.Vel.Z += wish.Z * Accel * dt
}

func (c *Controller) clampHorizontal(sprint bool) {
	max := c.params.WalkSpeed
	if sprint {
		max = c.params.SprintSpeed
	}
	h := c.Vel.HorizontalLength()
	if h > max {
		scale := max / h
		c.Vel.X *= scale
		c.Vel.Z *= scale
	}
}

// resolveY разрешает вертикальное перемещение с точной привязкой к опоре:
// приземление ставит глаза ровно на blockTop+EyeHeight, удар головой —
// бокс вплотную под потолок.
func (c *Controller) resolveY(dy float64) {
	if dy == 0 {
		return
	}

	// Пока не доказано обратное, игрок в этом подшаге без опоры
	c.Grounded = false

	moved := c.boxAt(vec.Vec3Float{X: c.Pos.X, Y: c.Pos.Y + dy, Z: c.Pos.Z})

	minX := int(math.Floor(moved.MinX))
	maxX := int(math.Floor(moved.MaxX))
	minZ := int(math.Floor(moved.MinZ))
	maxZ := int(math.Floor(moved.MaxZ))
	minY := int(math.Floor(moved.MinY))
	maxY := int(math.Floor(moved.MaxY))

	hit := false
	highestTop := math.Inf(-1) // Верх самой высокой опоры под игроком
	lowestBottom := math.Inf(1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				v := vec.Vec3{X: x, Y: y, Z: z}
				if !c.world.Solid(v) || !moved.OverlapsVoxel(v) {
					continue
				}
				hit = true
				if top := float64(y) + 1; top > highestTop {
					highestTop = top
				}
				if bottom := float64(y); bottom < lowestBottom {
					lowestBottom = bottom
				}
			}
		}
	}

	if !hit {
		c.Pos.Y += dy
		return
	}

	if dy < 0 {
		// Приземление на опору
		c.Pos.Y = highestTop + EyeHeight
		c.Vel.Y = 0
		c.Grounded = true
	} else {
		// Удар головой о потолок
		c.Pos.Y = lowestBottom - BodyHeight + EyeHeight
		c.Vel.Y = 0
	}
}

type axis int

const (
	axisX axis = iota
	axisZ
)

// resolveHorizontal разрешает перемещение по одной горизонтальной оси.
// При столкновении на земле сначала пробуется авто-шаг на один блок вверх;
// если проба свободна, шаг выполняется вместо заморозки оси.
func (c *Controller) resolveHorizontal(pos *float64, vel *float64, delta float64, a axis) {
	if delta == 0 {
		return
	}

	eye := c.Pos
	switch a {
	case axisX:
		eye.X += delta
	case axisZ:
		eye.Z += delta
	}

	moved := c.boxAt(eye)
	if c.Grounded {
		moved = moved.ShrunkFromBelow(GroundShrink)
	} else {
		moved = moved.ExpandedHorizontally(AirPadding)
	}

	if !collides(moved, c.world) {
		*pos += delta
		return
	}

	if c.Grounded {
		raised := moved.Translated(0, StepProbeHeight, 0)
		if !collides(raised, c.world) {
			// Авто-шаг: вертикальный импульс без горизонтального сдвига в этом
			// подшаге; подъём и заход на уступ завершает обычная интеграция
			c.Pos.Y += StepNudge
			c.Vel.Y = c.params.JumpForce * StepBoostFactor
			c.Grounded = false
			return
		}
	}

	// Ось замораживается: скорость гасится, позиция прижимается вплотную
	// к грани препятствия (строгие неравенства пересечения делают касание
	// бесконтактным). Привязка только по ходу движения: назад не тянем.
	pad := 0.0
	if !c.Grounded {
		pad = AirPadding
	}
	var lead float64
	switch a {
	case axisX:
		lead = eye.X
	case axisZ:
		lead = eye.Z
	}
	if delta > 0 {
		if flush := math.Floor(lead+HalfWidth+pad) - HalfWidth - pad; flush > *pos {
			*pos = flush
		}
	} else {
		if flush := math.Floor(lead-HalfWidth-pad) + 1 + HalfWidth + pad; flush < *pos {
			*pos = flush
		}
	}
	*vel = 0
}
