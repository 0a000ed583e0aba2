package rabbitmq

import "time"

type ConsumerConfig struct {
	Queue          string
	ConsumerTag    string
	ProcessTimeout time.Duration
}
