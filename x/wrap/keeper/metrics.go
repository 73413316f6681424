package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts completed wrap operations by action and result.
type Metrics struct {
	ops *prometheus.CounterVec
}

// NewMetrics builds the wrap counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wrap",
			Name:      "operations_total",
			Help:      "Completed wrap operations by action and result.",
		}, []string{"action", "result"}),
	}
	reg.MustRegister(m.ops)
	return m
}

// NopMetrics returns counters bound to a throwaway registry.
func NopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func (m *Metrics) observe(action string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ops.WithLabelValues(action, result).Inc()
}
