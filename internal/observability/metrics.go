// Package observability registers the Prometheus collectors for store
// operations.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var (
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gymtrack",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Store operations by name and result code.",
	}, []string{"operation", "result"})
	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gymtrack",
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Latency of store operations.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(operationsTotal, operationDuration)
}

// RecordOperation counts one finished operation and observes its latency.
// result is a gym error code such as "OK" or "NOT_FOUND".
func RecordOperation(operation, result string, started time.Time) {
	operationsTotal.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// OperationCount returns the current counter value for operation/result.
// Intended for tests and the stats endpoint.
func OperationCount(operation, result string) float64 {
	m, err := operationsTotal.GetMetricWithLabelValues(operation, result)
	if err != nil {
		return 0
	}
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}
