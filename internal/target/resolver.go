package target

import (
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// MaxRange — дальность прицеливания в блоках
const MaxRange = 6.0

// Target описывает блок, на который наведена камера.
// BreakPos — воксель для разрушения (точка попадания, сдвинутая против
// нормали внутрь блока). PlacePos — воксель для установки (сдвиг вдоль
// нормали в пустое пространство).
type Target struct {
	BreakPos vec.Vec3
	PlacePos vec.Vec3
	Block    block.BlockID
	Normal   vec.Vec3
	Point    vec.Vec3Float

	// PlaceOK=false, если установка перекрыла бы бокс игрока
	PlaceOK bool
}

// OverlapChecker — проверка пересечения вокселя с боксом игрока
type OverlapChecker interface {
	OverlapsVoxel(v vec.Vec3) bool
}

// Resolver трассирует луч из камеры и определяет прицельный блок
type Resolver struct {
	scene  render.Scene
	player OverlapChecker
}

// NewResolver создаёт резолвер поверх сцены.
// player может быть nil: тогда установка не отклоняется по пересечению.
func NewResolver(scene render.Scene, player OverlapChecker) *Resolver {
	return &Resolver{scene: scene, player: player}
}

// Resolve возвращает текущую цель или false, если в пределах дальности
// ничего нет.
func (r *Resolver) Resolve(origin, dir vec.Vec3Float) (Target, bool) {
	hit, ok := r.scene.CastRay(origin, dir, MaxRange)
	if !ok {
		return Target{}, false
	}

	n := hit.Normal.ToFloat()
	breakPos := hit.Point.Sub(n.Mul(0.5)).Floor()
	placePos := hit.Point.Add(n.Mul(0.5)).Floor()

	t := Target{
		BreakPos: breakPos,
		PlacePos: placePos,
		Block:    hit.Instance.Block,
		Normal:   hit.Normal,
		Point:    hit.Point,
		PlaceOK:  true,
	}
	if r.player != nil && r.player.OverlapsVoxel(placePos) {
		t.PlaceOK = false
	}
	return t, true
}
