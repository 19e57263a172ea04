package block

import "strings"

// ItemID представляет идентификатор предмета в едином пространстве:
// блоки занимают диапазон 1..99 (значение совпадает с BlockID),
// инструменты — от 100 (значение совпадает с ToolID).
// Промежуток оставлен для возможности расширения категорий.
type ItemID uint16

// NoItemID обозначает пустой слот инвентаря
const NoItemID ItemID = 0

// ItemFromBlock возвращает ID предмета для типа блока
func ItemFromBlock(id BlockID) ItemID {
	return ItemID(id)
}

// ItemFromTool возвращает ID предмета для инструмента
func ItemFromTool(id ToolID) ItemID {
	return ItemID(id)
}

// IsTool возвращает true, если предмет является инструментом
func (i ItemID) IsTool() bool {
	_, exists := toolRegistry[ToolID(i)]
	return exists
}

// IsBlock возвращает true, если предмет является блоком
func (i ItemID) IsBlock() bool {
	_, exists := registry[BlockID(i)]
	return exists
}

// AsBlock возвращает BlockID предмета (валиден только для блоков)
func (i ItemID) AsBlock() BlockID {
	return BlockID(i)
}

// AsTool возвращает описание инструмента, если предмет им является
func (i ItemID) AsTool() (*ToolDef, bool) {
	return GetTool(ToolID(i))
}

// StackLimit возвращает максимальный размер стека для предмета:
// инструменты не стекуются (1), остальные предметы — до 64.
func (i ItemID) StackLimit() int {
	if i.IsTool() {
		return 1
	}
	return 64
}

// Name возвращает имя предмета для команд
func (i ItemID) Name() string {
	if def, ok := registry[BlockID(i)]; ok {
		return def.Name
	}
	if def, ok := toolRegistry[ToolID(i)]; ok {
		return def.Name
	}
	return ""
}

// DisplayName возвращает отображаемое имя предмета
func (i ItemID) DisplayName() string {
	if def, ok := registry[BlockID(i)]; ok {
		return def.DisplayName
	}
	if def, ok := toolRegistry[ToolID(i)]; ok {
		return def.DisplayName
	}
	return ""
}

// ItemByName ищет предмет по имени без учёта регистра.
// Сначала проверяются блоки, затем инструменты.
func ItemByName(name string) (ItemID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if def, ok := byName[name]; ok {
		return ItemFromBlock(def.ID), true
	}
	if def, ok := toolByName[name]; ok {
		return ItemFromTool(def.ID), true
	}
	return NoItemID, false
}
