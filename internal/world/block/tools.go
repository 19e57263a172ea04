package block

// ToolClass определяет класс инструмента, требуемый блоку для добычи
type ToolClass uint8

const (
	ToolClassNone    ToolClass = iota // Блок ломается рукой
	ToolClassPickaxe                  // Кирка
	ToolClassAxe                      // Топор
	ToolClassShovel                   // Лопата
)

// ToolID представляет идентификатор инструмента.
// Инструменты нумеруются начиная со 100, чтобы не пересекаться с блоками
// в едином пространстве ID предметов.
type ToolID uint16

const (
	PickaxeToolID ToolID = 100 + iota // 100
	AxeToolID                         // 101
	ShovelToolID                      // 102
)

// ToolDef описывает неизменяемые свойства инструмента
type ToolDef struct {
	ID          ToolID
	Name        string  // Имя для команд
	DisplayName string  // Отображаемое имя
	Class       ToolClass
	Efficiency  float64 // Множитель скорости добычи, > 1
}

var toolRegistry = make(map[ToolID]*ToolDef)
var toolByName = make(map[string]*ToolDef)

// RegisterTool добавляет описание инструмента в регистр
func RegisterTool(def *ToolDef) {
	toolRegistry[def.ID] = def
	toolByName[def.Name] = def
}

// GetTool возвращает описание инструмента по ID
func GetTool(id ToolID) (*ToolDef, bool) {
	def, exists := toolRegistry[id]
	return def, exists
}
