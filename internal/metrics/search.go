package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kitsearch",
			Name:      "searches_total",
			Help:      "Total number of search pipeline runs",
		},
		[]string{"entry", "outcome"}, // outcome: "ok" / "fallback" / "error"
	)

	ReindexDocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kitsearch",
			Name:      "reindex_documents_total",
			Help:      "Total documents written during reindex runs",
		},
		[]string{"collection"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(ReindexDocumentsTotal)
	searchMetricsRegistered = true
}
