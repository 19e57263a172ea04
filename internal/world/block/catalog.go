package block

// Каталог блоков и инструментов демо.
// Твёрдость подобрана так, что блоки без инструмента ломаются меньше
// чем за секунду, а камень требует кирку.

func init() {
	Register(&Def{ID: GrassBlockID, Name: "grass", DisplayName: "草方块", Hardness: 0.6})
	Register(&Def{ID: DirtBlockID, Name: "dirt", DisplayName: "泥土", Hardness: 0.5})
	Register(&Def{ID: StoneBlockID, Name: "stone", DisplayName: "石头", Hardness: 1.8, Tool: ToolClassPickaxe})
	Register(&Def{ID: WoodBlockID, Name: "wood", DisplayName: "木头", Hardness: 1.2})
	Register(&Def{ID: LeavesBlockID, Name: "leaves", DisplayName: "树叶", Hardness: 0.2})
	Register(&Def{ID: SandBlockID, Name: "sand", DisplayName: "沙子", Hardness: 0.5})
	Register(&Def{ID: GlassBlockID, Name: "glass", DisplayName: "玻璃", Hardness: 0.3})
	Register(&Def{ID: TNTBlockID, Name: "tnt", DisplayName: "TNT", Hardness: 0.4})

	RegisterTool(&ToolDef{ID: PickaxeToolID, Name: "pickaxe", DisplayName: "铁镐", Class: ToolClassPickaxe, Efficiency: 1.6})
	RegisterTool(&ToolDef{ID: AxeToolID, Name: "axe", DisplayName: "斧头", Class: ToolClassAxe, Efficiency: 1.5})
	RegisterTool(&ToolDef{ID: ShovelToolID, Name: "shovel", DisplayName: "铁锹", Class: ToolClassShovel, Efficiency: 1.4})
}
