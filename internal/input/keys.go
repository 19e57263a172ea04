package input

// Key представляет клавишу в раскладке демо
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
	KeyT
	KeySlash
	KeyEscape
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
)

// MouseButton представляет кнопку мыши
type MouseButton int

const (
	MouseLeft  MouseButton = iota // Удержание — разрушение блока
	MouseRight                    // Нажатие — установка блока
)

// digitSlot возвращает индекс слота хотбара для цифровой клавиши
// и false для прочих клавиш.
func digitSlot(key Key) (int, bool) {
	if key >= Key1 && key <= Key8 {
		return int(key - Key1), true
	}
	return 0, false
}
