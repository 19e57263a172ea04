package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

func newTestWorld() (*VoxelWorld, *render.HeadlessScene) {
	scene := render.NewHeadlessScene()
	return NewVoxelWorld(scene), scene
}

func TestVoxelWorld_FloorLaw(t *testing.T) {
	// Дробные координаты ведут себя ровно как их floor
	w, _ := newTestWorld()

	assert.True(t, w.AddBlock(1.7, 2.3, -0.5, block.GrassBlockID), "Блок должен добавиться")

	id, exists := w.GetBlockAt(vec.Vec3{X: 1, Y: 2, Z: -1})
	assert.True(t, exists, "Блок должен лежать в floored-координате")
	assert.Equal(t, block.GrassBlockID, id)

	// Чтение через любые дробные координаты того же вокселя
	id, exists = w.GetBlock(1.01, 2.99, -0.01)
	assert.True(t, exists)
	assert.Equal(t, block.GrassBlockID, id)

	// Удаление через дробные координаты
	assert.True(t, w.RemoveBlock(1.99, 2.01, -0.99))
	assert.Equal(t, 0, w.Size())
}

func TestVoxelWorld_FirstWriterWins(t *testing.T) {
	// Повторное добавление в занятый воксель не перезаписывает тип
	w, _ := newTestWorld()

	assert.True(t, w.AddBlock(0, 0, 0, block.StoneBlockID))
	assert.False(t, w.AddBlock(0.5, 0.5, 0.5, block.DirtBlockID), "Занятый воксель не перезаписывается")

	id, _ := w.GetBlock(0, 0, 0)
	assert.Equal(t, block.StoneBlockID, id, "Первый записавший побеждает")
	assert.Equal(t, 1, w.Size())
}

func TestVoxelWorld_RemoveEmptyNoop(t *testing.T) {
	w, _ := newTestWorld()
	w.AddBlock(5, 5, 5, block.SandBlockID)

	assert.False(t, w.RemoveBlock(1, 2, 3), "Удаление из пустого вокселя — no-op")
	assert.Equal(t, 1, w.Size(), "Размер мира не должен меняться")
}

func TestVoxelWorld_InvalidBlockRejected(t *testing.T) {
	w, _ := newTestWorld()

	assert.False(t, w.AddBlock(0, 0, 0, block.AirBlockID), "Воздух не размещается")
	assert.False(t, w.AddBlock(0, 0, 0, block.BlockID(999)), "Неизвестный тип не размещается")
	assert.Equal(t, 0, w.Size())
}

func TestVoxelWorld_SceneHandleOwnership(t *testing.T) {
	// Мир владеет визуальными хэндлами: add создаёт экземпляр,
	// remove синхронно освобождает его, без висячих ссылок
	w, scene := newTestWorld()

	w.AddBlock(0, 0, 0, block.StoneBlockID)
	w.AddBlock(1, 0, 0, block.DirtBlockID)
	assert.Equal(t, 2, scene.Count(), "Каждый блок получает визуальный экземпляр")

	w.RemoveBlock(0, 0, 0)
	assert.Equal(t, 1, scene.Count(), "Экземпляр освобождён синхронно")

	surfaces := w.CollidableSurfaces()
	assert.Len(t, surfaces, 1)
	assert.Equal(t, vec.Vec3{X: 1, Y: 0, Z: 0}, surfaces[0].Pos, "Без устаревших записей")
}

func TestVoxelWorld_DisposeIdempotent(t *testing.T) {
	w, scene := newTestWorld()
	w.AddBlock(0, 0, 0, block.StoneBlockID)
	w.AddBlock(0, 1, 0, block.StoneBlockID)

	w.Dispose()
	assert.Equal(t, 0, scene.Count(), "Все хэндлы освобождены")
	assert.Equal(t, 0, w.Size())

	// Повторный Dispose безопасен
	w.Dispose()
	assert.Equal(t, 0, scene.Count())
}

func TestVoxelWorld_Solid(t *testing.T) {
	w, _ := newTestWorld()
	w.AddBlock(2, 3, 4, block.GlassBlockID)

	assert.True(t, w.Solid(vec.Vec3{X: 2, Y: 3, Z: 4}))
	assert.False(t, w.Solid(vec.Vec3{X: 2, Y: 4, Z: 4}))
}
