// Package metrics wraps the Prometheus collectors an Index exposes for
// construction and query observability. It is deliberately small: two
// counters and three histograms, registered by the caller rather than on
// init, so embedding a gapidx.Index in a larger service never double-
// registers against the default registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds one Index's collectors. The zero value is not usable;
// construct with New.
type Metrics struct {
	constructions     prometheus.Counter
	constructionBytes prometheus.Histogram
	buildDuration     prometheus.Histogram
	queries           *prometheus.CounterVec
	queryLatency      *prometheus.HistogramVec
}

// New returns a Metrics ready to observe and to be registered.
func New() *Metrics {
	return &Metrics{
		constructions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gapidx",
			Name:      "index_builds_total",
			Help:      "Number of Index instances built via New.",
		}),
		constructionBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gapidx",
			Name:      "index_build_bytes",
			Help:      "Size in bytes of text passed to New.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gapidx",
			Name:      "index_build_duration_seconds",
			Help:      "Wall-clock time spent building an Index via New.",
			Buckets:   prometheus.DefBuckets,
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gapidx",
			Name:      "queries_total",
			Help:      "Number of gap-match queries served, by engine.",
		}, []string{"engine"}),
		queryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gapidx",
			Name:      "query_duration_seconds",
			Help:      "Latency of gap-match queries, by engine.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
	}
}

// ObserveConstruction records one Index build.
func (m *Metrics) ObserveConstruction(textBytes int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.constructions.Inc()
	m.constructionBytes.Observe(float64(textBytes))
	m.buildDuration.Observe(elapsed.Seconds())
}

// ObserveQuery records one query served by the named engine ("dfs" or
// "ref").
func (m *Metrics) ObserveQuery(engine string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(engine).Inc()
	m.queryLatency.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// Collectors returns every collector, for bulk registration with a
// prometheus.Registerer.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{m.constructions, m.constructionBytes, m.buildDuration, m.queries, m.queryLatency}
}
