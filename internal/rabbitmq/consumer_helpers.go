package rabbitmq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/person_sync/pkg/metrics"
	"github.com/Gunvolt24/person_sync/pkg/normalize"
	"github.com/Gunvolt24/person_sync/pkg/validate"
)

// handleDelivery обрабатывает одну доставку и выставляет подтверждение по исходу.
func (c *Consumer) handleDelivery(ctx context.Context, d *amqp.Delivery) {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.SaveFromMessage(ctxTimeout, d.Body)
	cancel()

	switch {
	case err == nil:
		// Успешная обработка: подтверждаем доставку
		metrics.AMQPMessagesAcked.WithLabelValues(c.queue).Inc()
		c.ackSafely(ctx, d)
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		// Остановка посреди записи: запись не состоялась, и это не вина
		// сообщения. Не трогаем подтверждение — неподтверждённую доставку
		// брокер выдаст заново после рестарта.
		c.log.Warnf(ctx, "shutdown interrupted processing tag=%d: %v (left unacked)", d.DeliveryTag, err)
	case errors.Is(err, normalize.ErrBadMessage), errors.Is(err, validate.ErrInvalidPerson):
		// Мусор или неполная запись: выбрасываем без requeue,
		// чтобы не устроить бесконечный цикл из «ядовитого» сообщения
		metrics.AMQPMessagesRejected.WithLabelValues(c.queue).Inc()
		c.log.Warnf(ctx, "invalid message tag=%d: %v (discarded)", d.DeliveryTag, err)
		c.nackSafely(ctx, d)
	default:
		// Ошибка хранилища: тоже выбрасываем. Принятый компромисс —
		// «плохие данные в сторону, конвейер живёт»; сообщение для
		// этого конвейера потеряно.
		metrics.AMQPMessagesRejected.WithLabelValues(c.queue).Inc()
		c.log.Errorf(ctx, "process failed tag=%d: %v (discarded)", d.DeliveryTag, err)
		c.nackSafely(ctx, d)
	}
}

// ackSafely пытается подтвердить доставку и залогировать ошибку.
func (c *Consumer) ackSafely(ctx context.Context, d *amqp.Delivery) {
	if ackErr := d.Ack(false); ackErr != nil {
		c.log.Warnf(ctx, "ack failed tag=%d: %v", d.DeliveryTag, ackErr)
	}
}

// nackSafely — отрицательное подтверждение без requeue (сообщение выбрасывается).
func (c *Consumer) nackSafely(ctx context.Context, d *amqp.Delivery) {
	if nackErr := d.Nack(false, false); nackErr != nil {
		c.log.Warnf(ctx, "nack failed tag=%d: %v", d.DeliveryTag, nackErr)
	}
}
