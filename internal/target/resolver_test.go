package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// fakePlayer перекрывает фиксированный набор вокселей
type fakePlayer map[vec.Vec3]bool

func (p fakePlayer) OverlapsVoxel(v vec.Vec3) bool { return p[v] }

func TestResolve_LookingDown(t *testing.T) {
	// Взгляд вниз на блок под ногами: разрушение — сам блок,
	// установка — воксель над ним
	scene := render.NewHeadlessScene()
	scene.AddInstance(vec.Vec3{X: 0, Y: 0, Z: 0}, block.StoneBlockID)

	r := NewResolver(scene, nil)
	tgt, ok := r.Resolve(vec.Vec3Float{X: 0.5, Y: 2.6, Z: 0.5}, vec.Vec3Float{Y: -1})
	require.True(t, ok)

	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 0}, tgt.BreakPos)
	assert.Equal(t, vec.Vec3{X: 0, Y: 1, Z: 0}, tgt.PlacePos)
	assert.Equal(t, block.StoneBlockID, tgt.Block)
	assert.Equal(t, vec.Vec3{Y: 1}, tgt.Normal)
	assert.True(t, tgt.PlaceOK)
}

func TestResolve_SideFace(t *testing.T) {
	scene := render.NewHeadlessScene()
	scene.AddInstance(vec.Vec3{X: 3, Y: 1, Z: 0}, block.DirtBlockID)

	r := NewResolver(scene, nil)
	tgt, ok := r.Resolve(vec.Vec3Float{X: 0.5, Y: 1.5, Z: 0.5}, vec.Vec3Float{X: 1})
	require.True(t, ok)

	assert.Equal(t, vec.Vec3{X: 3, Y: 1, Z: 0}, tgt.BreakPos, "Разрушается задетый блок")
	assert.Equal(t, vec.Vec3{X: 2, Y: 1, Z: 0}, tgt.PlacePos, "Установка перед ближней гранью")
}

func TestResolve_NothingInRange(t *testing.T) {
	scene := render.NewHeadlessScene()
	scene.AddInstance(vec.Vec3{X: 20, Y: 0, Z: 0}, block.StoneBlockID)

	r := NewResolver(scene, nil)
	_, ok := r.Resolve(vec.Vec3Float{X: 0.5, Y: 0.5, Z: 0.5}, vec.Vec3Float{X: 1})
	assert.False(t, ok, "За пределами дальности цели нет")
}

func TestResolve_PlaceRejectedInsidePlayer(t *testing.T) {
	// Воксель установки совпадает с боксом игрока: PlaceOK=false,
	// разрушение при этом остаётся доступным
	scene := render.NewHeadlessScene()
	scene.AddInstance(vec.Vec3{X: 0, Y: 0, Z: 0}, block.StoneBlockID)

	player := fakePlayer{vec.Vec3{X: 0, Y: 1, Z: 0}: true}
	r := NewResolver(scene, player)

	tgt, ok := r.Resolve(vec.Vec3Float{X: 0.5, Y: 2.6, Z: 0.5}, vec.Vec3Float{Y: -1})
	require.True(t, ok)
	assert.False(t, tgt.PlaceOK, "Нельзя поставить блок в себя")
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 0}, tgt.BreakPos)
}
