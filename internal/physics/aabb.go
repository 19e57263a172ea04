package physics

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// AABB представляет осевой ограничивающий параллелепипед в мировых координатах
type AABB struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Translated возвращает копию, сдвинутую на (dx, dy, dz)
func (b AABB) Translated(dx, dy, dz float64) AABB {
	return AABB{
		MinX: b.MinX + dx, MinY: b.MinY + dy, MinZ: b.MinZ + dz,
		MaxX: b.MaxX + dx, MaxY: b.MaxY + dy, MaxZ: b.MaxZ + dz,
	}
}

// ExpandedHorizontally возвращает копию, расширенную на pad по осям X и Z
func (b AABB) ExpandedHorizontally(pad float64) AABB {
	return AABB{
		MinX: b.MinX - pad, MinY: b.MinY, MinZ: b.MinZ - pad,
		MaxX: b.MaxX + pad, MaxY: b.MaxY, MaxZ: b.MaxZ + pad,
	}
}

// ShrunkFromBelow возвращает копию с приподнятой нижней гранью.
// Используется, чтобы стоящий на полу бокс не цеплялся за собственную опору
// при горизонтальных проверках.
func (b AABB) ShrunkFromBelow(delta float64) AABB {
	nb := b
	nb.MinY += delta
	return nb
}

// OverlapsVoxel проверяет пересечение бокса с единичным вокселем
func (b AABB) OverlapsVoxel(v vec.Vec3) bool {
	return b.MaxX > float64(v.X) && b.MinX < float64(v.X)+1 &&
		b.MaxY > float64(v.Y) && b.MinY < float64(v.Y)+1 &&
		b.MaxZ > float64(v.Z) && b.MinZ < float64(v.Z)+1
}

// BlockChecker — предикат занятости вокселя (реализуется миром)
type BlockChecker interface {
	Solid(pos vec.Vec3) bool
}

// collides возвращает true, если бокс пересекает хотя бы один занятый воксель.
// Диапазон перебираемых вокселей вычисляется из границ бокса.
func collides(box AABB, checker BlockChecker) bool {
	minX := int(math.Floor(box.MinX))
	maxX := int(math.Floor(box.MaxX))
	minY := int(math.Floor(box.MinY))
	maxY := int(math.Floor(box.MaxY))
	minZ := int(math.Floor(box.MinZ))
	maxZ := int(math.Floor(box.MaxZ))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				v := vec.Vec3{X: x, Y: y, Z: z}
				if checker.Solid(v) && box.OverlapsVoxel(v) {
					return true
				}
			}
		}
	}
	return false
}
