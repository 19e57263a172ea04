package input

// Snapshot — стабильный снимок намерений игрока на один тик.
// Уровневые флаги отражают текущее состояние устройств, edge-события
// взводятся один раз и сбрасываются при снятии снимка.
type Snapshot struct {
	// Уровневые флаги движения
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool

	// Edge: запрос прыжка (один прыжок на нажатие, автоповтор подавлен)
	Jump bool

	// Edge-события разрушения/установки
	BreakStart bool
	BreakEnd   bool
	Place      bool

	// Уровень: ЛКМ всё ещё удерживается
	BreakHeld bool

	// Прямой выбор слота (цифры 1..8); -1 — выбора не было
	SelectSlot int

	// Накопленная прокрутка колеса за тик
	ScrollDelta int

	// Edge: открытие/закрытие командной консоли
	ConsoleOpen    bool
	ConsolePrefill string
	ConsoleClose   bool

	// Уровень: движение заблокировано открытой консолью
	MovementLocked bool
}

// State собирает сырые события устройств в пер-тиковый снимок намерений.
// Обработчики событий не входят в симуляцию повторно: симуляция только
// опрашивает снимок в начале тика.
type State struct {
	pressed map[Key]bool

	forward, back, left, right bool
	sprint                     bool
	jumpRequested              bool

	breakHeld  bool
	breakStart bool
	breakEnd   bool
	place      bool

	selectSlot  int
	scrollDelta int

	consoleOpen    bool // Уровень: консоль открыта
	consoleOpenEv  bool
	consolePrefill string
	consoleCloseEv bool
}

// NewState создаёт пустое состояние ввода
func NewState() *State {
	return &State{
		pressed:    make(map[Key]bool),
		selectSlot: -1,
	}
}

// KeyDown обрабатывает нажатие клавиши.
// Повторные события той же удерживаемой клавиши (key-repeat) игнорируются,
// поэтому edge-события не взводятся повторно.
func (s *State) KeyDown(key Key) {
	if s.pressed[key] {
		return
	}
	s.pressed[key] = true

	// Открытая консоль перехватывает клавиатуру; игре остаётся только Escape
	if s.consoleOpen {
		if key == KeyEscape {
			s.consoleOpen = false
			s.consoleCloseEv = true
		}
		return
	}

	switch key {
	case KeyW:
		s.forward = true
	case KeyS:
		s.back = true
	case KeyA:
		s.left = true
	case KeyD:
		s.right = true
	case KeySpace:
		s.jumpRequested = true
	case KeyLeftShift:
		s.sprint = true
	case KeyT:
		s.openConsole("")
	case KeySlash:
		s.openConsole("/")
	default:
		if slot, ok := digitSlot(key); ok {
			s.selectSlot = slot
		}
	}
}

// KeyUp обрабатывает отпускание клавиши
func (s *State) KeyUp(key Key) {
	if !s.pressed[key] {
		return
	}
	delete(s.pressed, key)

	switch key {
	case KeyW:
		s.forward = false
	case KeyS:
		s.back = false
	case KeyA:
		s.left = false
	case KeyD:
		s.right = false
	case KeyLeftShift:
		s.sprint = false
	}
}

// MouseDown обрабатывает нажатие кнопки мыши
func (s *State) MouseDown(button MouseButton) {
	if s.consoleOpen {
		return
	}
	switch button {
	case MouseLeft:
		if !s.breakHeld {
			s.breakHeld = true
			s.breakStart = true
		}
	case MouseRight:
		s.place = true
	}
}

// MouseUp обрабатывает отпускание кнопки мыши
func (s *State) MouseUp(button MouseButton) {
	if button == MouseLeft && s.breakHeld {
		s.breakHeld = false
		s.breakEnd = true
	}
}

// Wheel накапливает прокрутку колеса.
// Положительная дельта — следующий слот, отрицательная — предыдущий.
func (s *State) Wheel(delta int) {
	if s.consoleOpen {
		return
	}
	s.scrollDelta += delta
}

// FocusLost обрабатывает потерю pointer-lock/фокуса окна:
// все уровневые флаги сбрасываются, удержание разрушения завершается.
func (s *State) FocusLost() {
	s.pressed = make(map[Key]bool)
	s.forward, s.back, s.left, s.right, s.sprint = false, false, false, false, false
	s.jumpRequested = false
	if s.breakHeld {
		s.breakHeld = false
		s.breakEnd = true
	}
}

// CloseConsole закрывает консоль извне (после отправки команды)
func (s *State) CloseConsole() {
	if s.consoleOpen {
		s.consoleOpen = false
		s.consoleCloseEv = true
	}
}

// ConsoleOpen возвращает true, если консоль открыта
func (s *State) ConsoleOpen() bool {
	return s.consoleOpen
}

func (s *State) openConsole(prefill string) {
	s.consoleOpen = true
	s.consoleOpenEv = true
	s.consolePrefill = prefill
	// Открытие консоли останавливает движение
	s.forward, s.back, s.left, s.right, s.sprint = false, false, false, false, false
	s.jumpRequested = false
	if s.breakHeld {
		s.breakHeld = false
		s.breakEnd = true
	}
}

// Snapshot снимает снимок намерений и сбрасывает edge-события.
// Вызывается ровно один раз в начале каждого тика.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Forward:        s.forward,
		Back:           s.back,
		Left:           s.left,
		Right:          s.right,
		Sprint:         s.sprint,
		Jump:           s.jumpRequested,
		BreakStart:     s.breakStart,
		BreakEnd:       s.breakEnd,
		Place:          s.place,
		BreakHeld:      s.breakHeld,
		SelectSlot:     s.selectSlot,
		ScrollDelta:    s.scrollDelta,
		ConsoleOpen:    s.consoleOpenEv,
		ConsolePrefill: s.consolePrefill,
		ConsoleClose:   s.consoleCloseEv,
		MovementLocked: s.consoleOpen,
	}

	// Edge-события потребляются один раз за тик
	s.jumpRequested = false
	s.breakStart = false
	s.breakEnd = false
	s.place = false
	s.selectSlot = -1
	s.scrollDelta = 0
	s.consoleOpenEv = false
	s.consolePrefill = ""
	s.consoleCloseEv = false

	return snap
}
