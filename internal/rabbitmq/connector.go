package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/person_sync/internal/ports"
)

// ErrBrokerUnavailable — брокер недоступен после исчерпания попыток подключения.
// Для процесса это фатально: вызывающая сторона завершает работу с ненулевым кодом.
var ErrBrokerUnavailable = errors.New("amqp broker unavailable")

// Connection — минимальный контракт над amqp.Connection,
// чтобы легко подменять его фейками в тестах.
type Connection interface {
	Channel() (*amqp.Channel, error)
	Close() error
}

type dialFunc func(url string) (Connection, error)

// Connector — установление соединения и канала с ограниченным числом попыток.
// Пауза между попытками растёт экспоненциально: min(initial * 2^(n-1), max),
// то есть при дефолтах 1s, 2s, 4s, 8s, 16s, 30s, 30s...
type Connector struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	log      ports.Logger

	// dial и sleep подменяются в тестах: расписание пауз проверяется
	// детерминированно, без настоящего ожидания.
	dial  dialFunc
	sleep func(ctx context.Context, d time.Duration) bool
}

// NewConnector — конструктор. Нулевые параметры заменяются дефолтами (10 попыток, 1s/30s).
func NewConnector(attempts int, initial, max time.Duration, log ports.Logger) *Connector {
	if attempts <= 0 {
		attempts = 10
	}
	if initial <= 0 {
		initial = time.Second
	}
	if max <= 0 {
		max = 30 * time.Second
	}
	return &Connector{
		attempts: attempts,
		initial:  initial,
		max:      max,
		log:      log,
		dial: func(url string) (Connection, error) {
			return amqp.Dial(url)
		},
		sleep: func(ctx context.Context, d time.Duration) bool {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(d):
				return true
			}
		},
	}
}

// Connect — открывает соединение и канал на нём. Неудачная попытка (включая
// неудачу открытия канала) логируется на уровне warning с номером, максимумом,
// паузой и причиной; после исчерпания попыток возвращается ErrBrokerUnavailable
// с последней ошибкой внутри.
func (c *Connector) Connect(ctx context.Context, brokerURL string) (Connection, *amqp.Channel, error) {
	delay := c.initial
	var lastErr error

	for attempt := 1; attempt <= c.attempts; attempt++ {
		conn, err := c.dial(brokerURL)
		if err == nil {
			ch, chErr := conn.Channel()
			if chErr == nil {
				// в лог соединение попадает без учётных данных
				c.log.Infof(ctx, "amqp connected url=%s", RedactURL(brokerURL))
				return conn, ch, nil
			}
			// канал не открылся — соединение бесполезно, закрываем и повторяем
			_ = conn.Close()
			err = chErr
		}
		lastErr = err

		if attempt == c.attempts {
			// последняя попытка тоже отчитывается на warning, но без паузы
			c.log.Warnf(ctx, "amqp connect attempt %d/%d failed: %v", attempt, c.attempts, err)
			break
		}
		c.log.Warnf(ctx, "amqp connect attempt %d/%d failed: %v (retry in %s)", attempt, c.attempts, err, delay)
		if !c.sleep(ctx, delay) {
			return nil, nil, ctx.Err()
		}
		delay = c.nextDelay(delay)
	}

	return nil, nil, fmt.Errorf("%w after %d attempts: %v", ErrBrokerUnavailable, c.attempts, lastErr)
}

// nextDelay — следующая пауза с учётом потолка.
func (c *Connector) nextDelay(current time.Duration) time.Duration {
	current *= 2
	if current > c.max {
		return c.max
	}
	return current
}

// Shutdown — закрывает канал, затем соединение. Ошибки закрытия логируются,
// но не возвращаются: остановка не должна падать.
func Shutdown(ctx context.Context, log ports.Logger, ch *amqp.Channel, conn Connection) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			log.Warnf(ctx, "amqp channel close error: %v", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Warnf(ctx, "amqp connection close error: %v", err)
		}
	}
}

// RedactURL — прячет учётные данные в URL брокера: user:pass@ -> :****@.
// Маску собираем текстом: через url.Userinfo звёздочки уехали бы в
// percent-encoding (%2A%2A%2A%2A). Неразборчивый URL возвращается как есть
// (он всё равно не подключится).
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Scheme + "://:****@" + u.Host + u.RequestURI()
}
