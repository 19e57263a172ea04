package eventbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Типы игровых событий.
const (
	EventBlockBroken = "BlockBroken"
	EventBlockPlaced = "BlockPlaced"
	EventItemGranted = "ItemGranted"
)

// NewBlockBrokenEvent создаёт событие разрушения блока.
func NewBlockBrokenEvent(source string, pos vec.Vec3, blockName string) *Envelope {
	return newEvent(source, EventBlockBroken, map[string]interface{}{
		"x":     pos.X,
		"y":     pos.Y,
		"z":     pos.Z,
		"block": blockName,
	})
}

// NewBlockPlacedEvent создаёт событие установки блока.
func NewBlockPlacedEvent(source string, pos vec.Vec3, blockName string) *Envelope {
	return newEvent(source, EventBlockPlaced, map[string]interface{}{
		"x":     pos.X,
		"y":     pos.Y,
		"z":     pos.Z,
		"block": blockName,
	})
}

// NewItemGrantedEvent создаёт событие выдачи предмета в инвентарь.
func NewItemGrantedEvent(source string, itemName string, count int) *Envelope {
	return newEvent(source, EventItemGranted, map[string]interface{}{
		"item":  itemName,
		"count": count,
	})
}

func newEvent(source, eventType string, payload map[string]interface{}) *Envelope {
	return &Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    source,
		EventType: eventType,
		Priority:  1,
		Payload:   payload,
	}
}
