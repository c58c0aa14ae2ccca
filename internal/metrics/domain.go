package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search, document and token metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memoria",
			Name:      "search_queries_total",
			Help:      "Search queries by order and whether the query was blank",
		},
		[]string{"order", "blank"},
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "memoria",
			Name:      "search_results_returned",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		},
	)

	SearchRankDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "memoria",
			Name:      "search_rank_duration_seconds",
			Help:      "Time spent ranking an owner's documents",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		},
	)

	FrontmatterFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memoria",
			Name:      "frontmatter_failures_total",
			Help:      "Rejected document writes by frontmatter failure kind",
		},
		[]string{"kind"}, // "format" / "validation"
	)

	DocumentWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memoria",
			Name:      "document_writes_total",
			Help:      "Document writes by operation and outcome",
		},
		[]string{"op", "result"}, // op: create/update/delete; result: ok/conflict/error
	)

	TokenLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memoria",
			Name:      "token_lookups_total",
			Help:      "Personal access token lookups",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var domainMetricsRegistered bool

// RegisterDomainMetrics registers search, document and token metrics. Must be
// called once from main.
func RegisterDomainMetrics() {
	if domainMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(SearchResultsReturned)
	prometheus.MustRegister(SearchRankDuration)
	prometheus.MustRegister(FrontmatterFailuresTotal)
	prometheus.MustRegister(DocumentWritesTotal)
	prometheus.MustRegister(TokenLookupsTotal)
	domainMetricsRegistered = true
}
