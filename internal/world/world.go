package world

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// VoxelWorld хранит разреженный воксельный мир: отображение целочисленной
// координаты в тип блока. Чанков нет — демо-мир достаточно мал.
//
// Мир владеет визуальными хэндлами сцены: добавление блока создаёт
// экземпляр в сцене, удаление синхронно освобождает его. Очистка ресурсов
// не полагается на сборщик мусора.
//
// Все методы вызываются только из потока симуляции, синхронизация не нужна.
type VoxelWorld struct {
	blocks  map[vec.Vec3]block.BlockID
	handles map[vec.Vec3]render.Handle
	scene   render.Scene
}

// NewVoxelWorld создаёт пустой мир поверх указанной сцены
func NewVoxelWorld(scene render.Scene) *VoxelWorld {
	return &VoxelWorld{
		blocks:  make(map[vec.Vec3]block.BlockID),
		handles: make(map[vec.Vec3]render.Handle),
		scene:   scene,
	}
}

// floorPos приводит дробные мировые координаты к координате вокселя.
// Всегда floor, не округление: -0.5 принадлежит вокселю -1,
// что согласуется с семантикой коллизий.
func floorPos(x, y, z float64) vec.Vec3 {
	return vec.Vec3{
		X: int(math.Floor(x)),
		Y: int(math.Floor(y)),
		Z: int(math.Floor(z)),
	}
}

// GetBlock возвращает тип блока в указанной позиции.
// Возвращает AirBlockID и false, если позиция пуста.
func (w *VoxelWorld) GetBlock(x, y, z float64) (block.BlockID, bool) {
	id, exists := w.blocks[floorPos(x, y, z)]
	return id, exists
}

// GetBlockAt возвращает тип блока по целочисленной координате вокселя
func (w *VoxelWorld) GetBlockAt(pos vec.Vec3) (block.BlockID, bool) {
	id, exists := w.blocks[pos]
	return id, exists
}

// AddBlock помещает блок в указанную позицию.
// Если позиция уже занята, вызов игнорируется: первый записавший побеждает,
// существующий блок никогда не перезаписывается.
// Возвращает true, если блок был помещён.
func (w *VoxelWorld) AddBlock(x, y, z float64, id block.BlockID) bool {
	return w.AddBlockAt(floorPos(x, y, z), id)
}

// AddBlockAt помещает блок по целочисленной координате вокселя
func (w *VoxelWorld) AddBlockAt(pos vec.Vec3, id block.BlockID) bool {
	if !block.IsValidBlockID(id) || id == block.AirBlockID {
		return false
	}
	if _, occupied := w.blocks[pos]; occupied {
		return false
	}

	w.blocks[pos] = id
	if w.scene != nil {
		w.handles[pos] = w.scene.AddInstance(pos, id)
	}
	return true
}

// RemoveBlock удаляет блок из указанной позиции.
// Пустая позиция — no-op. Визуальный экземпляр освобождается синхронно.
// Возвращает true, если блок был удалён.
func (w *VoxelWorld) RemoveBlock(x, y, z float64) bool {
	return w.RemoveBlockAt(floorPos(x, y, z))
}

// RemoveBlockAt удаляет блок по целочисленной координате вокселя
func (w *VoxelWorld) RemoveBlockAt(pos vec.Vec3) bool {
	if _, exists := w.blocks[pos]; !exists {
		return false
	}

	delete(w.blocks, pos)
	if h, ok := w.handles[pos]; ok {
		delete(w.handles, pos)
		if w.scene != nil {
			w.scene.RemoveInstance(h)
		}
	}
	return true
}

// Solid возвращает true, если воксель занят блоком.
// Используется физикой и трассировкой как предикат проходимости.
func (w *VoxelWorld) Solid(pos vec.Vec3) bool {
	_, exists := w.blocks[pos]
	return exists
}

// Size возвращает количество блоков в мире
func (w *VoxelWorld) Size() int {
	return len(w.blocks)
}

// CollidableSurfaces возвращает текущий набор коллидируемых экземпляров сцены.
// Набор отражает состояние мира после каждого add/remove без устаревших записей.
func (w *VoxelWorld) CollidableSurfaces() []render.Instance {
	if w.scene == nil {
		return nil
	}
	return w.scene.Instances()
}

// Dispose освобождает все визуальные хэндлы мира. Повторные вызовы безопасны.
func (w *VoxelWorld) Dispose() {
	if len(w.handles) == 0 {
		return
	}
	released := 0
	for pos, h := range w.handles {
		if w.scene != nil {
			w.scene.RemoveInstance(h)
		}
		delete(w.handles, pos)
		released++
	}
	w.blocks = make(map[vec.Vec3]block.BlockID)
	logging.Debug("VoxelWorld: освобождено %d визуальных хэндлов", released)
}
