package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Decision outcomes by action and outcome
	DecisionOutcome *prometheus.CounterVec

	// Context gathering latencies by source
	ContextLatency *prometheus.HistogramVec

	// Overall resolution latency
	ResolveLatency prometheus.Histogram
}

// New creates a new Metrics instance with all eligibility metrics registered.
func New() *Metrics {
	return &Metrics{
		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "filings_allowable_outcomes_total",
			Help: "Total allowable-action outcomes by action and outcome",
		}, []string{"action", "outcome"}),

		ContextLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "filings_allowable_context_duration_seconds",
			Help:    "Duration of decision-context gathering by source",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"source"}), // source: "business", "filing_data"

		ResolveLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "filings_allowable_resolve_duration_seconds",
			Help:    "Duration of full allowable-action resolution including context gathering",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementOutcome records a single action decision.
func (m *Metrics) IncrementOutcome(action, outcome string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(action, outcome).Inc()
	}
}

// ObserveContextLatency records the duration of loading one context source.
func (m *Metrics) ObserveContextLatency(source string, d time.Duration) {
	if m != nil {
		m.ContextLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// ObserveResolveLatency records the total resolution duration.
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}
