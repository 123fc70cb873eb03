package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and card-store Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardex",
			Name:      "searches_total",
			Help:      "Total number of search requests",
		},
		[]string{"outcome"}, // "ok" / "parse_error"
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cardex",
			Name:      "search_results",
			Help:      "Number of cards returned per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	CardCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cardex",
			Name:      "cards_loaded",
			Help:      "Number of cards in the active collection",
		},
	)

	ReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cardex",
			Name:      "card_reloads_total",
			Help:      "Card collection reload attempts",
		},
		[]string{"outcome"}, // "ok" / "error"
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers search metrics. Safe to call more
// than once and from concurrent goroutines.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(SearchesTotal)
		prometheus.MustRegister(SearchResults)
		prometheus.MustRegister(CardCount)
		prometheus.MustRegister(ReloadsTotal)
	})
}
