package block

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID    BlockID = iota // 0 — отсутствие блока
	GrassBlockID                 // 1
	DirtBlockID                  // 2
	StoneBlockID                 // 3
	WoodBlockID                  // 4
	LeavesBlockID                // 5
	SandBlockID                  // 6
	GlassBlockID                 // 7
	TNTBlockID                   // 8
)

// Def описывает неизменяемые свойства типа блока.
// Каталог заполняется один раз при инициализации пакета и после этого
// доступен только на чтение.
type Def struct {
	ID          BlockID
	Name        string    // Имя для команд (латиница, нижний регистр)
	DisplayName string    // Отображаемое имя (строки интерфейса демо)
	Hardness    float64   // Сопротивление разрушению, > 0
	Tool        ToolClass // Класс инструмента, без которого блок не ломается
}

var registry = make(map[BlockID]*Def)
var byName = make(map[string]*Def)

// Register добавляет описание блока в регистр.
// Вызывается только из init(); после инициализации каталог не мутирует.
func Register(def *Def) {
	registry[def.ID] = def
	byName[def.Name] = def
}

// Get возвращает описание блока по ID
func Get(id BlockID) (*Def, bool) {
	def, exists := registry[id]
	return def, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}
