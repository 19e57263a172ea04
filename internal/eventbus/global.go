package eventbus

import "context"

var globalBus EventBus

// Init устанавливает глобальную шину.
func Init(bus EventBus) { globalBus = bus }

// Publish отправляет событие в глобальную шину, если она инициализирована.
func Publish(ctx context.Context, ev *Envelope) error {
	if globalBus == nil {
		return nil
	}
	return globalBus.Publish(ctx, ev)
}

// Subscribe подписывается на события глобальной шины.
// Если шина не инициализирована, возвращает nil-подписку без ошибки.
func Subscribe(f Filter, h Handler) (Subscription, error) {
	if globalBus == nil {
		return nil, nil
	}
	return globalBus.Subscribe(context.Background(), f, h)
}
