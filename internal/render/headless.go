package render

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// HeadlessScene — реализация Scene без GPU.
// Хранит экземпляры в карте и трассирует лучи пошаговым проходом по
// воксельной сетке (DDA). Используется демо-циклом и тестами.
type HeadlessScene struct {
	instances map[Handle]Instance
	byPos     map[vec.Vec3]Handle
	nextID    Handle
	disposed  bool
}

// NewHeadlessScene создаёт пустую сцену
func NewHeadlessScene() *HeadlessScene {
	return &HeadlessScene{
		instances: make(map[Handle]Instance),
		byPos:     make(map[vec.Vec3]Handle),
		nextID:    1,
	}
}

// AddInstance создаёт экземпляр блока и возвращает хэндл
func (s *HeadlessScene) AddInstance(pos vec.Vec3, id block.BlockID) Handle {
	h := s.nextID
	s.nextID++
	s.instances[h] = Instance{Pos: pos, Block: id}
	s.byPos[pos] = h
	return h
}

// RemoveInstance освобождает экземпляр по хэндлу
func (s *HeadlessScene) RemoveInstance(h Handle) {
	inst, ok := s.instances[h]
	if !ok {
		return
	}
	delete(s.instances, h)
	if s.byPos[inst.Pos] == h {
		delete(s.byPos, inst.Pos)
	}
}

// Instances возвращает срез текущих экземпляров
func (s *HeadlessScene) Instances() []Instance {
	out := make([]Instance, 0, len(s.instances))
	for _, inst := range s.instances {
		out = append(out, inst)
	}
	return out
}

// Count возвращает число экземпляров в сцене
func (s *HeadlessScene) Count() int {
	return len(s.instances)
}

// Dispose освобождает все экземпляры
func (s *HeadlessScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.instances = make(map[Handle]Instance)
	s.byPos = make(map[vec.Vec3]Handle)
}

// CastRay трассирует луч по воксельной сетке (алгоритм Amanatides–Woo).
// Возвращает ближайший задетый экземпляр, точку входа луча в его воксель
// и внешнюю нормаль задетой грани.
func (s *HeadlessScene) CastRay(origin, dir vec.Vec3Float, maxDist float64) (Hit, bool) {
	d := dir.Normalized()
	if d.Length() == 0 {
		return Hit{}, false
	}

	// Текущий воксель и шаг по каждой оси
	cell := origin.Floor()
	stepX, tMaxX, tDeltaX := axisInit(origin.X, d.X, cell.X)
	stepY, tMaxY, tDeltaY := axisInit(origin.Y, d.Y, cell.Y)
	stepZ, tMaxZ, tDeltaZ := axisInit(origin.Z, d.Z, cell.Z)

	var normal vec.Vec3
	t := 0.0

	for t <= maxDist {
		// Стартовый воксель пропускаем: луч выходит из головы игрока
		if normal != (vec.Vec3{}) {
			if h, ok := s.byPos[cell]; ok {
				inst := s.instances[h]
				return Hit{
					Point:    origin.Add(d.Mul(t)),
					Normal:   normal,
					Instance: inst,
				}, true
			}
		}

		// Переходим в соседний воксель через ближайшую грань
		switch {
		case tMaxX <= tMaxY && tMaxX <= tMaxZ:
			t = tMaxX
			tMaxX += tDeltaX
			cell.X += stepX
			normal = vec.Vec3{X: -stepX}
		case tMaxY <= tMaxZ:
			t = tMaxY
			tMaxY += tDeltaY
			cell.Y += stepY
			normal = vec.Vec3{Y: -stepY}
		default:
			t = tMaxZ
			tMaxZ += tDeltaZ
			cell.Z += stepZ
			normal = vec.Vec3{Z: -stepZ}
		}
	}

	return Hit{}, false
}

// axisInit вычисляет параметры DDA для одной оси:
// направление шага, параметр t до первой границы вокселя и шаг t между границами.
func axisInit(origin, dir float64, cell int) (step int, tMax, tDelta float64) {
	if dir > 0 {
		return 1, (float64(cell) + 1 - origin) / dir, 1 / dir
	}
	if dir < 0 {
		return -1, (origin - float64(cell)) / -dir, 1 / -dir
	}
	return 0, math.Inf(1), math.Inf(1)
}
