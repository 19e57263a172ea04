package inventory

import (
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// ItemStack представляет стек одного типа предметов в слоте.
// Count всегда в диапазоне [1, StackLimit]: пустой слот хранится как nil.
type ItemStack struct {
	Item  block.ItemID
	Count int
}

// Store — инвентарь-хотбар фиксированного размера.
// Слоты упорядочены; один слот всегда выбран. Мутируется только потоком
// симуляции, снимки для UI читаются без блокировок.
type Store struct {
	slots    []*ItemStack
	selected int
}

// NewStore создаёт пустой инвентарь указанного размера
func NewStore(size int) *Store {
	if size <= 0 {
		size = 8
	}
	return &Store{
		slots: make([]*ItemStack, size),
	}
}

// Size возвращает число слотов
func (s *Store) Size() int {
	return len(s.slots)
}

// Slot возвращает стек в указанном слоте (nil — слот пуст).
// Индекс вне диапазона даёт nil.
func (s *Store) Slot(index int) *ItemStack {
	if index < 0 || index >= len(s.slots) {
		return nil
	}
	return s.slots[index]
}

// Selected возвращает индекс выбранного слота
func (s *Store) Selected() int {
	return s.selected
}

// SelectedStack возвращает стек выбранного слота (nil — слот пуст)
func (s *Store) SelectedStack() *ItemStack {
	return s.slots[s.selected]
}

// SelectSlot выбирает слот по абсолютному индексу.
// Индекс вне диапазона молча игнорируется.
func (s *Store) SelectSlot(index int) {
	if index < 0 || index >= len(s.slots) {
		return
	}
	s.selected = index
}

// ScrollSelection сдвигает выбранный слот на delta с заворотом в обе стороны:
// прокрутка с нулевого слота на -1 выбирает последний слот, а не отрицательный.
func (s *Store) ScrollSelection(delta int) {
	size := len(s.slots)
	s.selected = ((s.selected+delta)%size + size) % size
}

// AddItem добавляет count предметов указанного типа.
// Сначала дозаполняются существующие стеки того же типа (по возрастанию
// индекса), затем пустые слоты (также по возрастанию). Порядок заполнения
// детерминирован. Возвращает количество, которое не поместилось.
func (s *Store) AddItem(item block.ItemID, count int) int {
	if count <= 0 || (!item.IsBlock() && !item.IsTool()) {
		return count
	}

	limit := item.StackLimit()
	remaining := count

	// Дозаполняем существующие стеки
	for _, stack := range s.slots {
		if remaining == 0 {
			break
		}
		if stack == nil || stack.Item != item || stack.Count >= limit {
			continue
		}
		take := limit - stack.Count
		if take > remaining {
			take = remaining
		}
		stack.Count += take
		remaining -= take
	}

	// Раскладываем остаток по пустым слотам
	for i := range s.slots {
		if remaining == 0 {
			break
		}
		if s.slots[i] != nil {
			continue
		}
		take := limit
		if take > remaining {
			take = remaining
		}
		s.slots[i] = &ItemStack{Item: item, Count: take}
		remaining -= take
	}

	return remaining
}

// ConsumeSelected уменьшает стек выбранного слота на amount.
// Если счётчик опускается до нуля и ниже, слот становится пустым.
func (s *Store) ConsumeSelected(amount int) {
	stack := s.slots[s.selected]
	if stack == nil || amount <= 0 {
		return
	}
	stack.Count -= amount
	if stack.Count <= 0 {
		s.slots[s.selected] = nil
	}
}

// SelectedTool возвращает описание инструмента в выбранном слоте,
// если там лежит инструмент.
func (s *Store) SelectedTool() (*block.ToolDef, bool) {
	stack := s.slots[s.selected]
	if stack == nil {
		return nil, false
	}
	return stack.Item.AsTool()
}
