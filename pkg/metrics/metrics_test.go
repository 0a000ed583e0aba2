package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/person_sync/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAMQPCounters_Inc(t *testing.T) {
	beforeConsumed := testutil.ToFloat64(metrics.AMQPMessagesConsumed.WithLabelValues("persons"))
	beforeAcked := testutil.ToFloat64(metrics.AMQPMessagesAcked.WithLabelValues("persons"))
	beforeRejected := testutil.ToFloat64(metrics.AMQPMessagesRejected.WithLabelValues("persons"))

	metrics.AMQPMessagesConsumed.WithLabelValues("persons").Inc()
	metrics.AMQPMessagesAcked.WithLabelValues("persons").Inc()
	metrics.AMQPMessagesRejected.WithLabelValues("persons").Inc()

	if got := testutil.ToFloat64(metrics.AMQPMessagesConsumed.WithLabelValues("persons")); got != beforeConsumed+1 {
		t.Fatalf("AMQPMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.AMQPMessagesAcked.WithLabelValues("persons")); got != beforeAcked+1 {
		t.Fatalf("AMQPMessagesAcked: got=%v want=%v", got, beforeAcked+1)
	}
	if got := testutil.ToFloat64(metrics.AMQPMessagesRejected.WithLabelValues("persons")); got != beforeRejected+1 {
		t.Fatalf("AMQPMessagesRejected: got=%v want=%v", got, beforeRejected+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
