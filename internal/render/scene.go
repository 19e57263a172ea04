package render

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Handle идентифицирует визуальный экземпляр блока в сцене.
// Владеет хэндлом мир: он обязан синхронно освободить его при удалении блока.
type Handle uint64

// NoHandle обозначает отсутствие визуального экземпляра
const NoHandle Handle = 0

// Instance описывает один коллидируемый экземпляр блока в сцене
type Instance struct {
	Pos   vec.Vec3
	Block block.BlockID
}

// Hit описывает результат попадания луча в блок
type Hit struct {
	Point    vec.Vec3Float // Точка пересечения луча с гранью блока
	Normal   vec.Vec3      // Внешняя нормаль задетой грани (единичная, осевая)
	Instance Instance      // Задетый экземпляр
}

// Scene определяет узкий интерфейс к графу сцены рендерера.
// Симуляция не знает о мешах, материалах и инстансинге — только об
// операциях добавления/удаления экземпляров и трассировке луча.
type Scene interface {
	// AddInstance создаёт визуальный экземпляр блока и возвращает хэндл.
	AddInstance(pos vec.Vec3, id block.BlockID) Handle

	// RemoveInstance синхронно освобождает экземпляр по хэндлу.
	// Неизвестный хэндл игнорируется.
	RemoveInstance(h Handle)

	// Instances возвращает текущий набор коллидируемых экземпляров.
	Instances() []Instance

	// CastRay трассирует луч и возвращает ближайшее попадание.
	CastRay(origin, dir vec.Vec3Float, maxDist float64) (Hit, bool)

	// Dispose освобождает все ресурсы сцены. Повторные вызовы безопасны.
	Dispose()
}
