package gen

import (
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/util"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Generator засевает стартовую площадку демо-мира.
// Поверхность — трава с мягким перлин-рельефом, под ней слой земли,
// глубже — камень. Края площадки песчаные.
type Generator struct {
	Seed        int64
	Radius      int     // Радиус площадки в блоках
	GroundLevel int     // Y верхнего слоя блоков
	NoiseScale  float64 // Масштаб шума рельефа
}

// NewGenerator создаёт генератор с указанным сидом
func NewGenerator(seed int64, radius, groundLevel int) *Generator {
	util.InitPerlinNoise(seed)

	return &Generator{
		Seed:        seed,
		Radius:      radius,
		GroundLevel: groundLevel,
		NoiseScale:  0.08,
	}
}

// Populate заполняет мир стартовой площадкой
func (g *Generator) Populate(w *world.VoxelWorld) {
	for x := -g.Radius; x <= g.Radius; x++ {
		for z := -g.Radius; z <= g.Radius; z++ {
			noise := util.PerlinNoise2D(float64(x)*g.NoiseScale, float64(z)*g.NoiseScale, g.Seed)

			// Рельеф: 0..1 блок поверх базового уровня
			top := g.GroundLevel
			if noise > 0.65 {
				top++
			}

			surface := block.GrassBlockID
			if x == -g.Radius || x == g.Radius || z == -g.Radius || z == g.Radius {
				surface = block.SandBlockID
			}

			w.AddBlockAt(vec.Vec3{X: x, Y: top, Z: z}, surface)
			w.AddBlockAt(vec.Vec3{X: x, Y: top - 1, Z: z}, block.DirtBlockID)
			w.AddBlockAt(vec.Vec3{X: x, Y: top - 2, Z: z}, block.StoneBlockID)
		}
	}

	logging.Info("🌍 Стартовая площадка: радиус=%d, блоков=%d", g.Radius, w.Size())
}
