package block

import "testing"

func TestCatalogLookup(t *testing.T) {
	// Каталог заполняется в init(); проверяем базовые свойства
	def, exists := Get(StoneBlockID)
	if !exists {
		t.Fatal("Ожидалось наличие камня в каталоге")
	}

	if def.Hardness != 1.8 {
		t.Errorf("Ожидалась твёрдость камня 1.8, получено %v", def.Hardness)
	}

	if def.Tool != ToolClassPickaxe {
		t.Errorf("Камень должен требовать кирку, получен класс %d", def.Tool)
	}

	if !IsValidBlockID(GrassBlockID) {
		t.Error("GrassBlockID должен быть допустимым")
	}

	if IsValidBlockID(BlockID(999)) {
		t.Error("Неизвестный ID не должен быть допустимым")
	}
}

func TestToolCatalog(t *testing.T) {
	tool, exists := GetTool(PickaxeToolID)
	if !exists {
		t.Fatal("Ожидалось наличие кирки в каталоге")
	}

	if tool.Efficiency != 1.6 {
		t.Errorf("Ожидалась эффективность кирки 1.6, получено %v", tool.Efficiency)
	}

	if tool.Class != ToolClassPickaxe {
		t.Errorf("Ожидался класс кирки, получен %d", tool.Class)
	}
}

func TestItemByNameCaseInsensitive(t *testing.T) {
	// Поиск предмета не зависит от регистра и пробелов по краям
	for _, name := range []string{"stone", "Stone", "STONE", "  stone  "} {
		item, ok := ItemByName(name)
		if !ok {
			t.Fatalf("Предмет %q должен находиться", name)
		}
		if item.AsBlock() != StoneBlockID {
			t.Errorf("Ожидался камень для %q, получено %d", name, item)
		}
	}

	if _, ok := ItemByName("unicorn"); ok {
		t.Error("Неизвестное имя не должно находиться")
	}
}

func TestItemStackLimits(t *testing.T) {
	// Блоки стекуются до 64, инструменты не стекуются
	if limit := ItemFromBlock(StoneBlockID).StackLimit(); limit != 64 {
		t.Errorf("Ожидался лимит 64 для блока, получено %d", limit)
	}

	if limit := ItemFromTool(PickaxeToolID).StackLimit(); limit != 1 {
		t.Errorf("Ожидался лимит 1 для инструмента, получено %d", limit)
	}

	pickaxe := ItemFromTool(PickaxeToolID)
	if !pickaxe.IsTool() || pickaxe.IsBlock() {
		t.Error("Кирка должна быть инструментом, а не блоком")
	}
}
