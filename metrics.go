// SPDX-License-Identifier: EPL-2.0

package audsys

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ik5/audsys/spi"
)

// Metrics holds the Prometheus registry and the facade meters.
type Metrics struct {
	Registry         *prometheus.Registry
	DispatchAttempts *prometheus.CounterVec
	OperationTotal   *prometheus.CounterVec
	BytesWritten     prometheus.Counter
}

// NewMetrics creates a private Prometheus registry with the audsys metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audsys_dispatch_attempts_total",
		Help: "Provider attempts made while dispatching an operation.",
	}, []string{"op", "provider", "outcome"})

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audsys_operations_total",
		Help: "Facade operations by final status.",
	}, []string{"op", "status"})

	written := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "audsys_bytes_written_total",
		Help: "Bytes written by successful write operations.",
	})

	reg.MustRegister(attempts, operations, written)

	return &Metrics{
		Registry:         reg,
		DispatchAttempts: attempts,
		OperationTotal:   operations,
		BytesWritten:     written,
	}
}

func (m *Metrics) attempt(a spi.Attempt) {
	if m == nil {
		return
	}
	m.DispatchAttempts.WithLabelValues(a.Op, a.Provider, a.Kind.String()).Inc()
}

func (m *Metrics) operation(op, status string) {
	if m == nil {
		return
	}
	m.OperationTotal.WithLabelValues(op, status).Inc()
}

func (m *Metrics) written(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesWritten.Add(float64(n))
}
