// Package metrics wires a Prometheus registry for the engine, trimmed from
// the host project's cluster/replication/licensing/security surface down to
// what a connection-local query engine actually emits: entry-point latency,
// reload activity, staleness, and interner size.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric the engine emits, backed by its own
// prometheus.Registry rather than the global default so multiple engine
// instances in one process (e.g. tests) never collide on metric names.
type Registry struct {
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	QueryNodesScanned *prometheus.HistogramVec

	ReloadsTotal    *prometheus.CounterVec
	ReloadDuration  prometheus.Histogram
	GraphStale      *prometheus.GaugeVec
	LoadedGeneration *prometheus.GaugeVec

	RelTypeCount *prometheus.GaugeVec
	NodeCount    *prometheus.GaugeVec
	EdgeCount    *prometheus.GaugeVec

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry, created lazily.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates an independent registry with all engine metrics
// registered against it.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.QueriesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphaccel_queries_total",
			Help: "Total number of query entry-point invocations",
		},
		[]string{"entry", "status"},
	)
	r.QueryDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphaccel_query_duration_seconds",
			Help:    "Query entry-point duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"entry"},
	)
	r.QueryNodesScanned = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphaccel_query_nodes_scanned",
			Help:    "Nodes visited per query",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		},
		[]string{"entry"},
	)

	r.ReloadsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphaccel_reloads_total",
			Help: "Total number of snapshot loads, from load() and from ensure_fresh inline reloads",
		},
		[]string{"graph_name", "status"},
	)
	r.ReloadDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphaccel_reload_duration_seconds",
			Help:    "Snapshot load duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 30},
		},
	)
	r.GraphStale = promauto.With(reg).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphaccel_graph_stale",
			Help: "1 if the loaded snapshot's generation trails the store's current generation",
		},
		[]string{"graph_name"},
	)
	r.LoadedGeneration = promauto.With(reg).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphaccel_loaded_generation",
			Help: "Generation recorded at the time the current snapshot finished loading",
		},
		[]string{"graph_name"},
	)

	r.RelTypeCount = promauto.With(reg).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphaccel_rel_type_count",
			Help: "Number of distinct relationship types interned in the loaded snapshot",
		},
		[]string{"graph_name"},
	)
	r.NodeCount = promauto.With(reg).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphaccel_node_count",
			Help: "Number of nodes in the loaded snapshot",
		},
		[]string{"graph_name"},
	)
	r.EdgeCount = promauto.With(reg).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphaccel_edge_count",
			Help: "Number of edges in the loaded snapshot",
		},
		[]string{"graph_name"},
	)

	return r
}

// GetPrometheusRegistry exposes the underlying registry for an HTTP
// /metrics handler to serve.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordQuery records one query entry-point invocation.
func (r *Registry) RecordQuery(entry, status string, duration time.Duration, nodesScanned int) {
	r.QueriesTotal.WithLabelValues(entry, status).Inc()
	r.QueryDuration.WithLabelValues(entry).Observe(duration.Seconds())
	r.QueryNodesScanned.WithLabelValues(entry).Observe(float64(nodesScanned))
}

// RecordReload records one snapshot load, whether from an explicit load()
// or an ensure_fresh-triggered inline reload.
func (r *Registry) RecordReload(graphName, status string, duration time.Duration) {
	r.ReloadsTotal.WithLabelValues(graphName, status).Inc()
	r.ReloadDuration.Observe(duration.Seconds())
}

// SetStatus updates the gauges reported by the status() control entry.
func (r *Registry) SetStatus(graphName string, loadedGeneration, currentGeneration int64, relTypes, nodes, edges int) {
	stale := float64(0)
	if loadedGeneration < currentGeneration {
		stale = 1
	}
	r.GraphStale.WithLabelValues(graphName).Set(stale)
	r.LoadedGeneration.WithLabelValues(graphName).Set(float64(loadedGeneration))
	r.RelTypeCount.WithLabelValues(graphName).Set(float64(relTypes))
	r.NodeCount.WithLabelValues(graphName).Set(float64(nodes))
	r.EdgeCount.WithLabelValues(graphName).Set(float64(edges))
}
