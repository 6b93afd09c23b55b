// Package metrics exposes ingestion counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Unit outcomes.
const (
	OutcomeCreated = "created"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// Run results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the ingestion collectors on their own registry.
type Metrics struct {
	registry  *prometheus.Registry
	units     *prometheus.CounterVec
	runs      *prometheus.CounterVec
	backfills prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanikani_units_total",
			Help: "Total number of detail pages processed, by subject kind and outcome.",
		}, []string{"kind", "outcome"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wanikani_runs_total",
			Help: "Total number of ingestion runs, by subject kind and result.",
		}, []string{"kind", "result"}),
		backfills: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wanikani_backfills_total",
			Help: "Total number of radical backfills triggered by unresolved kanji components.",
		}),
	}
	m.registry.MustRegister(
		m.units,
		m.runs,
		m.backfills,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Unit counts one processed detail page. A nil receiver records nothing.
func (m *Metrics) Unit(kind, outcome string) {
	if m == nil {
		return
	}
	m.units.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) Run(kind string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.runs.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) Backfill() {
	if m == nil {
		return
	}
	m.backfills.Inc()
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
