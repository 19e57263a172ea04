package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

func populate(seed int64, radius int) *world.VoxelWorld {
	w := world.NewVoxelWorld(render.NewHeadlessScene())
	NewGenerator(seed, radius, 0).Populate(w)
	return w
}

func TestPopulate_Layers(t *testing.T) {
	w := populate(1337, 4)

	// Центр площадки: поверхность — трава, ниже земля, глубже камень
	var top int
	for y := 1; y >= 0; y-- {
		if _, exists := w.GetBlockAt(vec.Vec3{X: 0, Y: y, Z: 0}); exists {
			top = y
			break
		}
	}

	id, exists := w.GetBlockAt(vec.Vec3{X: 0, Y: top, Z: 0})
	require.True(t, exists)
	assert.Equal(t, block.GrassBlockID, id, "Поверхность — трава")

	id, _ = w.GetBlockAt(vec.Vec3{X: 0, Y: top - 1, Z: 0})
	assert.Equal(t, block.DirtBlockID, id, "Под поверхностью земля")

	id, _ = w.GetBlockAt(vec.Vec3{X: 0, Y: top - 2, Z: 0})
	assert.Equal(t, block.StoneBlockID, id, "Глубже камень")
}

func TestPopulate_SandEdge(t *testing.T) {
	w := populate(1337, 4)

	found := false
	for y := 1; y >= 0; y-- {
		if id, exists := w.GetBlockAt(vec.Vec3{X: 4, Y: y, Z: 0}); exists {
			assert.Equal(t, block.SandBlockID, id, "Край площадки песчаный")
			found = true
			break
		}
	}
	assert.True(t, found, "На краю площадки должен быть блок поверхности")
}

func TestPopulate_Deterministic(t *testing.T) {
	// Один сид — одна площадка
	a := populate(42, 6)
	b := populate(42, 6)

	assert.Equal(t, a.Size(), b.Size())
	for _, inst := range a.CollidableSurfaces() {
		idA, _ := a.GetBlockAt(inst.Pos)
		idB, exists := b.GetBlockAt(inst.Pos)
		require.True(t, exists, "Блок %v должен существовать в обоих мирах", inst.Pos)
		assert.Equal(t, idA, idB)
	}
}

func TestPopulate_CoversFullSquare(t *testing.T) {
	radius := 3
	w := populate(7, radius)

	side := 2*radius + 1
	// Каждая колонка даёт три блока (поверхность, земля, камень)
	assert.Equal(t, side*side*3, w.Size())
}
