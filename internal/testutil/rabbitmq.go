//go:build integration

package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// UniqueQueue — даёт уникальное имя очереди на основе базового префикса.
// Пример: base="persons-itest" → "persons-itest-20250826T010203123456789".
func UniqueQueue(base string) string {
	// наносекунды включаем в строку и убираем точку, чтобы имя было валидным
	s := time.Now().UTC().Format("20060102T150405.000000000")
	s = strings.ReplaceAll(s, ".", "")
	return fmt.Sprintf("%s-%s", base, s)
}

// PublishJSON — объявляет durable-очередь и публикует в неё тело как JSON.
// Для тестов: отдельное соединение на каждый вызов, закрывается сразу.
func PublishJSON(ctx context.Context, url, queue string, body []byte) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare: %w", err)
	}

	return ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
