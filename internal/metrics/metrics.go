// Package metrics exposes per-run counters for ingestion and lookup.
//
// Each Metrics value owns its own registry so a run (or a test) never shares
// state with another. A nil *Metrics is valid and records nothing.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Label values.
const (
	PhaseIngest = "ingest"
	PhaseLookup = "lookup"

	OutcomeAccepted  = "accepted"
	OutcomeDiscarded = "discarded"
	OutcomeHit       = "hit"
	OutcomeMiss      = "miss"
)

// Metrics holds the collectors for one run.
type Metrics struct {
	reg *prometheus.Registry

	lines    *prometheus.CounterVec
	tokens   *prometheus.CounterVec
	lookups  *prometheus.CounterVec
	distinct prometheus.Gauge
}

// New creates a Metrics with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordtally_lines_read_total",
			Help: "Input lines read, by phase.",
		}, []string{"phase"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordtally_tokens_total",
			Help: "Candidate tokens seen during ingestion, by outcome.",
		}, []string{"outcome"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordtally_lookups_total",
			Help: "Tally lookups, by outcome.",
		}, []string{"outcome"}),
		distinct: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordtally_distinct_words",
			Help: "Distinct words in the finished tally.",
		}),
	}
	m.reg.MustRegister(m.lines, m.tokens, m.lookups, m.distinct)
	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// LineRead counts one line read in phase.
func (m *Metrics) LineRead(phase string) {
	if m == nil {
		return
	}
	m.lines.WithLabelValues(phase).Inc()
}

// Token counts one candidate token.
func (m *Metrics) Token(accepted bool) {
	if m == nil {
		return
	}
	if accepted {
		m.tokens.WithLabelValues(OutcomeAccepted).Inc()
		return
	}
	m.tokens.WithLabelValues(OutcomeDiscarded).Inc()
}

// Lookup counts one lookup.
func (m *Metrics) Lookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.lookups.WithLabelValues(OutcomeHit).Inc()
		return
	}
	m.lookups.WithLabelValues(OutcomeMiss).Inc()
}

// SetDistinctWords records the size of the finished tally.
func (m *Metrics) SetDistinctWords(n int) {
	if m == nil {
		return
	}
	m.distinct.Set(float64(n))
}

// WriteTextfile writes all metrics in the text exposition format to path,
// suitable for a node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
