// file: internal/metrics/metrics.go
// version: 1.0.0
// guid: d18c5f2a-7e40-4b93-a6d1-0c48e9b3f572

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	searchesStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "plantmatch",
		Name:      "searches_total",
		Help:      "Total number of match searches started",
	})
	strictMatches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "plantmatch",
		Name:      "strict_matches_total",
		Help:      "Total number of searches that produced at least one strict match",
	})
	providerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "plantmatch",
		Name:      "provider_errors_total",
		Help:      "Total number of candidate provider failures degraded to empty results",
	})
	candidatesScored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "plantmatch",
		Name:      "candidates_scored_total",
		Help:      "Total number of candidate name variants scored",
	})
	searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "plantmatch",
		Name:      "search_duration_seconds",
		Help:      "Histogram of end-to-end match search durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // ~1ms up to a few seconds
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searchesStarted, strictMatches, providerErrors,
			candidatesScored, searchDuration)
	})
}

// Search lifecycle helpers
func IncSearchStarted()         { searchesStarted.Inc() }
func IncStrictMatch()           { strictMatches.Inc() }
func IncProviderError()         { providerErrors.Inc() }
func AddCandidatesScored(n int) { candidatesScored.Add(float64(n)) }
func ObserveSearchDuration(d time.Duration) {
	searchDuration.Observe(d.Seconds())
}
