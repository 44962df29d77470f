// Package metrics instruments the engine with the Prometheus counters and
// histograms named in SPEC_FULL.md's ambient stack: generation outcomes,
// durations, timeouts, and backtracks, keyed by solver.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry wraps the engine's Prometheus collectors. There is no HTTP
// scrape endpoint: the CLI is the only consumer, and it dumps the
// registry as a one-shot text export via WriteTo rather than serving it.
type Registry struct {
	registry           *prometheus.Registry
	generationTotal    *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	timeoutsTotal      *prometheus.CounterVec
	backtracksTotal    prometheus.Counter
}

// New registers the engine's collectors on a fresh registry.
func New() *Registry {
	registry := prometheus.NewRegistry()

	generationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "generation_total",
		Help: "Total number of schedule generation attempts",
	}, []string{"solver", "outcome"})

	generationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "generation_duration_seconds",
		Help:    "Duration of schedule generation attempts",
		Buckets: prometheus.DefBuckets,
	}, []string{"solver"})

	timeoutsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timeouts_total",
		Help: "Total number of generation attempts that hit their deadline",
	}, []string{"solver"})

	backtracksTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backtracks_total",
		Help: "Total number of CSP backtracking steps across all generations",
	})

	registry.MustRegister(generationTotal, generationDuration, timeoutsTotal, backtracksTotal)

	return &Registry{
		registry:           registry,
		generationTotal:    generationTotal,
		generationDuration: generationDuration,
		timeoutsTotal:      timeoutsTotal,
		backtracksTotal:    backtracksTotal,
	}
}

// WriteTo writes every collected metric family to w in Prometheus's
// plain-text exposition format, for the CLI's --metrics flag.
func (r *Registry) WriteTo(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}

// ObserveGeneration records one solve attempt's outcome and duration.
func (r *Registry) ObserveGeneration(solver, outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.generationTotal.WithLabelValues(solver, outcome).Inc()
	r.generationDuration.WithLabelValues(solver).Observe(duration.Seconds())
}

// ObserveTimeout records a solver hitting its deadline.
func (r *Registry) ObserveTimeout(solver string) {
	if r == nil {
		return
	}
	r.timeoutsTotal.WithLabelValues(solver).Inc()
}

// AddBacktracks accumulates CSP backtracking steps.
func (r *Registry) AddBacktracks(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.backtracksTotal.Add(float64(n))
}
