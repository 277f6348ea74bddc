package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AMQPDeliveriesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amqp_deliveries_consumed_total",
			Help: "Number of deliveries received from the queue",
		},
		[]string{"queue"},
	)
	AMQPDeliveriesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amqp_deliveries_processed_total",
			Help: "Number of deliveries handled successfully",
		},
		[]string{"queue"},
	)
	AMQPDeliveriesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amqp_deliveries_failed_total",
			Help: "Number of deliveries that failed, by outcome",
		},
		[]string{"queue", "outcome"}, // invalid|requeued|dropped
	)
)

var (
	UsersPersisted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_persisted_total",
			Help: "Number of user records inserted into the store",
		},
	)
	AddUserErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "add_user_errors_total",
			Help: "Failed inserts by error kind",
		},
		[]string{"kind"}, // duplicate_key|connection_lost|timeout|invalid_record|canceled|unknown
	)
	AddUserDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "add_user_duration_seconds",
			Help:    "Duration of a single insert into the store",
			Buckets: prometheus.DefBuckets,
		},
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

var registerOnce sync.Once

// MustRegister — регистрация всех метрик в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			AMQPDeliveriesConsumed, AMQPDeliveriesProcessed, AMQPDeliveriesFailed,
			UsersPersisted, AddUserErrors, AddUserDuration,
			CacheOps, CacheSize,
		)
	})
}
