// Package prom provides a Prometheus-backed implementation of
// singine.MetricsCollector.
//
// Metrics are registered against the given prometheus.Registerer, so callers
// control exposure (typically promhttp over the default registry).
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/singine"
)

// Collector implements singine.MetricsCollector on Prometheus primitives.
type Collector struct {
	loadTotal      *prometheus.CounterVec
	edgesLoaded    prometheus.Counter
	loadDuration   prometheus.Histogram
	searchTotal    *prometheus.CounterVec
	searchDuration prometheus.Histogram
	mintTotal      *prometheus.CounterVec
	persistTotal   *prometheus.CounterVec
}

var _ singine.MetricsCollector = (*Collector)(nil)

// New creates a Collector registered against reg. If reg is nil the default
// registerer is used.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		loadTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "singine_edge_loads_total",
				Help: "Total number of edge snapshot loads",
			},
			[]string{"status"},
		),
		edgesLoaded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "singine_edges_loaded_total",
				Help: "Total number of edges loaded across all queries",
			},
		),
		loadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "singine_edge_load_duration_seconds",
				Help:    "Duration of edge snapshot loads in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		searchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "singine_searches_total",
				Help: "Total number of shortest-path searches",
			},
			[]string{"outcome"},
		),
		searchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name: "singine_search_duration_seconds",
				Help: "Duration of shortest-path searches in seconds",
				// Searches are in-memory; buckets skew small.
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		mintTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "singine_mints_total",
				Help: "Total number of identifier mints",
			},
			[]string{"status"},
		),
		persistTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "singine_path_persists_total",
				Help: "Total number of persisted path results",
			},
			[]string{"status"},
		),
	}
}

// RecordLoad implements singine.MetricsCollector.
func (c *Collector) RecordLoad(count int, duration time.Duration, err error) {
	c.loadTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		c.edgesLoaded.Add(float64(count))
		c.loadDuration.Observe(duration.Seconds())
	}
}

// RecordSearch implements singine.MetricsCollector.
func (c *Collector) RecordSearch(duration time.Duration, found bool, err error) {
	outcome := "found"
	switch {
	case err != nil:
		outcome = "error"
	case !found:
		outcome = "no_path"
	}
	c.searchTotal.WithLabelValues(outcome).Inc()
	if err == nil {
		c.searchDuration.Observe(duration.Seconds())
	}
}

// RecordMint implements singine.MetricsCollector.
func (c *Collector) RecordMint(_ time.Duration, err error) {
	c.mintTotal.WithLabelValues(status(err)).Inc()
}

// RecordPersist implements singine.MetricsCollector.
func (c *Collector) RecordPersist(_ time.Duration, err error) {
	c.persistTotal.WithLabelValues(status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
