package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/person_sync/internal/ports"
	"github.com/Gunvolt24/person_sync/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// ErrDeliveriesClosed — брокер закрыл канал доставок посреди работы.
// Повторно подключается не консьюмер, а supervisor процесса (рестарт).
var ErrDeliveriesClosed = errors.New("amqp deliveries channel closed")

// channel — минимальный контракт над источником (amqp.Channel),
// чтобы легко подменять его фейками в тестах.
type channel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	IsClosed() bool
	Close() error
}

// messageSaver — зависимость на бизнес-логику,
// которая нормализует/валидирует/сохраняет сообщение.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — обёртка над каналом AMQP + зависимостями (usecase, logger).
type Consumer struct {
	ch             channel
	queue          string
	tag            string
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	closeOnce      sync.Once
}

// NewConsumer — конструктор. Канал предполагается уже открытым,
// очередь — уже объявленной (EnsureQueue).
func NewConsumer(cfg *ConsumerConfig, ch channel, service messageSaver, log ports.Logger) *Consumer {
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	return &Consumer{
		ch:             ch,
		queue:          cfg.Queue,
		tag:            cfg.ConsumerTag,
		service:        service,
		log:            log,
		processTimeout: pt,
	}
}

// Run — основной цикл:
// 1) prefetch = 1 — брокер не выдаёт следующую доставку, пока текущая не подтверждена;
// 2) подписка без авто-ack'а;
// 3) на каждую доставку — ровно один Ack или Nack (без requeue), строго после
//    завершения попытки записи; исключение — остановка посреди записи:
//    доставка остаётся без подтверждения и передоставляется после рестарта;
// 4) закрытие канала доставок — ошибка: цикл завершается, приложение останавливается.
func (c *Consumer) Run(ctx context.Context) error {
	if c.ch == nil || c.ch.IsClosed() {
		return ErrChannelNotReady
	}
	if err := c.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.ch.Consume(
		c.queue,
		c.tag,
		false, // auto-ack выключен: подтверждаем явно по исходу обработки
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	c.log.Infof(ctx, "amqp consumer started queue=%s tag=%s", c.queue, c.tag)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return ErrDeliveriesClosed
			}
			metrics.AMQPMessagesConsumed.WithLabelValues(c.queue).Inc()
			c.handleDelivery(ctx, &d)
		}
	}
}

// Close - закрывает канал. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.ch.Close()
	})
	return retErr
}
