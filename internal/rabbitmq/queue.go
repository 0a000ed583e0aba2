package rabbitmq

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrChannelNotReady — канал не открыт к моменту операции.
// При корректной последовательности запуска не возникает.
var ErrChannelNotReady = errors.New("amqp channel is not open")

// queueDeclarer — минимальный контракт над amqp.Channel для объявления очереди.
type queueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	IsClosed() bool
}

// EnsureQueue — объявляет durable-очередь. Объявление идемпотентно:
// безопасно вызывать на каждом старте, если параметры очереди не менялись.
func EnsureQueue(ch queueDeclarer, name string) error {
	if ch == nil || ch.IsClosed() {
		return ErrChannelNotReady
	}
	if _, err := ch.QueueDeclare(
		name,
		true,  // durable — очередь переживает рестарт брокера
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare queue %q: %w", name, err)
	}
	return nil
}
