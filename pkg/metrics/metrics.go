package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AMQPMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amqp_messages_consumed_total",
			Help: "Number of deliveries received from the broker",
		},
		[]string{"queue"},
	)
	AMQPMessagesAcked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amqp_messages_acked_total",
			Help: "Number of deliveries processed and acknowledged",
		},
		[]string{"queue"},
	)
	AMQPMessagesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amqp_messages_rejected_total",
			Help: "Number of deliveries nacked without requeue (discarded)",
		},
		[]string{"queue"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(AMQPMessagesConsumed, AMQPMessagesAcked, AMQPMessagesRejected, CacheOps, CacheSize)
}
