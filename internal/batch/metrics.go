package batch

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics counts executed steps on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	steps    *prometheus.CounterVec
	created  *prometheus.CounterVec
}

// NewMetrics creates and registers the batch counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vibeseq",
			Subsystem: "batch",
			Name:      "steps_total",
			Help:      "Batch steps executed, by operation and outcome.",
		}, []string{"op", "outcome"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vibeseq",
			Subsystem: "batch",
			Name:      "sequences_created_total",
			Help:      "Sequences created by create or transcribe steps, by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.steps, m.created)
	return m
}

// Registry returns the registry the counters are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeStep(r Result) {
	m.steps.WithLabelValues(r.Op, r.Outcome()).Inc()
}

func (m *Metrics) observeCreated(kind string) {
	m.created.WithLabelValues(kind).Inc()
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
