package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Balance operations by type (charge|use) and outcome
	// (ok|invalid_amount|insufficient_balance|balance_limit_exceeded|store_error).
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_operations_total",
			Help: "Balance update operations by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	// Time spent waiting to acquire the per-account lock.
	LockWaitSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "point_lock_wait_seconds",
			Help:    "Wait time for the per-account lock",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// /metrics handler
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(LockWaitSeconds)
}
