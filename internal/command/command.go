package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/inventory"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// LogEntry — результат выполнения команды для строки консоли.
// Пользовательские строки демо на китайском, как в интерфейсе оригинала.
type LogEntry struct {
	Level   logging.LogLevel
	Message string
}

// Interpreter разбирает текстовые команды консоли.
// Грамматика: необязательный ведущий '/', затем `give <item> [count=1]`.
// Ошибочные команды никогда не мутируют инвентарь.
type Interpreter struct {
	inv *inventory.Store
}

// NewInterpreter создаёт интерпретатор поверх инвентаря
func NewInterpreter(inv *inventory.Store) *Interpreter {
	return &Interpreter{inv: inv}
}

// Execute выполняет строку команды и возвращает запись для консоли
func (i *Interpreter) Execute(raw string) LogEntry {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "/")

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return i.fail("指令不能为空")
	}

	switch strings.ToLower(fields[0]) {
	case "give":
		return i.executeGive(fields[1:])
	default:
		return i.fail(fmt.Sprintf("未知指令: %s", fields[0]))
	}
}

// executeGive обрабатывает `give <item> [count]`
func (i *Interpreter) executeGive(args []string) LogEntry {
	if len(args) == 0 {
		return i.fail("用法: /give <物品> [数量]")
	}

	item, ok := block.ItemByName(args[0])
	if !ok {
		return i.fail(fmt.Sprintf("未知物品: %s", args[0]))
	}

	count := 1
	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return i.fail(fmt.Sprintf("数量无效: %s", args[1]))
		}
		count = n
	}

	leftover := i.inv.AddItem(item, count)
	name := item.DisplayName()

	if granted := count - leftover; granted > 0 {
		eventbus.Publish(context.Background(), eventbus.NewItemGrantedEvent("command", item.Name(), granted))
	}

	switch {
	case leftover == count:
		// Синтаксически команда верна, но ничего не поместилось
		return i.fail(fmt.Sprintf("背包已满，无法获得 %s", name))
	case leftover > 0:
		return i.ok(fmt.Sprintf("已获得 %d 个%s（背包已满，丢弃 %d 个）", count-leftover, name, leftover))
	default:
		return i.ok(fmt.Sprintf("已获得 %d 个%s", count, name))
	}
}

func (i *Interpreter) ok(msg string) LogEntry {
	logging.Info("Command: %s", msg)
	return LogEntry{Level: logging.INFO, Message: msg}
}

func (i *Interpreter) fail(msg string) LogEntry {
	logging.Error("Command: %s", msg)
	return LogEntry{Level: logging.ERROR, Message: msg}
}
