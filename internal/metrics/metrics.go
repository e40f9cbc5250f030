// Package metrics exposes Prometheus instrumentation for domain operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Operations counts completed domain operations by name and outcome.
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "posada",
		Name:      "operations_total",
		Help:      "Domain operations processed, by operation and outcome.",
	}, []string{"operation", "outcome"})

	// FlushFailures counts snapshot writes that failed. A growing value
	// means the session is running with in-memory state only.
	FlushFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "posada",
		Name:      "flush_failures_total",
		Help:      "Snapshot store writes that failed.",
	})
)

// ObserveOperation records one operation outcome.
func ObserveOperation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Operations.WithLabelValues(operation, outcome).Inc()
}
