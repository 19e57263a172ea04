package eventbus

import (
	"context"

	"github.com/annel0/voxel-sandbox/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в выделенный
// лог компонента eventbus (logs/eventbus_<время>.log). Функция неблокирующая.
func StartLoggingListener(bus EventBus) error {
	logger := logging.GetComponentLogger("eventbus")
	_, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		logger.Debug("[EventBus] %s %s src=%s prio=%d payload=%v", ev.ID, ev.EventType, ev.Source, ev.Priority, ev.Payload)
	})
	if err != nil {
		return err
	}
	logger.Info("🪵 LoggingListener: подписка на все события активирована")
	return nil
}
