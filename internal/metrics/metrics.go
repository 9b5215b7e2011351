// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeStaleSelection = "stale_selection"
)

var (
	// Catalog Metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_records",
			Help: "Number of movie records in the loaded catalog",
		},
	)

	CatalogUnmatchedTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_unmatched_titles",
			Help: "Streaming records without a metadata match (empty genre set)",
		},
	)

	CatalogGenres = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_genres",
			Help: "Distinct genre tokens in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_catalog_load_duration_seconds",
			Help:    "Time spent reading and joining the catalog sources",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_catalog_load_errors_total",
			Help: "Catalog load failures by source",
		},
		[]string{"source"}, // "streaming", "metadata"
	)

	// Filter / Recommend Metrics
	FilterResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_filter_result_size",
			Help:    "Number of records surviving the filter stage",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommendations_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_recommendation_duration_seconds",
			Help:    "Time spent scoring and ranking candidates",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	// Poster Lookup Metrics
	PosterLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_poster_lookups_total",
			Help: "Poster lookups by provider and outcome",
		},
		[]string{"provider", "outcome"}, // outcome: "hit", "miss", "error"
	)

	PosterLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_poster_lookup_duration_seconds",
			Help:    "Latency of outbound poster provider calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)
)

// RecordCatalogLoad publishes the shape of a freshly loaded catalog.
func RecordCatalogLoad(records, unmatched, genres int, duration time.Duration) {
	CatalogRecords.Set(float64(records))
	CatalogUnmatchedTitles.Set(float64(unmatched))
	CatalogGenres.Set(float64(genres))
	CatalogLoadDuration.Observe(duration.Seconds())
}

// RecordCatalogLoadError counts a failed load of source.
func RecordCatalogLoadError(source string) {
	CatalogLoadErrors.WithLabelValues(source).Inc()
}

// RecordFilter observes the size of a filter result.
func RecordFilter(resultSize int) {
	FilterResultSize.Observe(float64(resultSize))
}

// RecordRecommendation counts a recommendation request and its latency.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordPosterLookup counts a provider call.
func RecordPosterLookup(provider, outcome string, duration time.Duration) {
	PosterLookupsTotal.WithLabelValues(provider, outcome).Inc()
	PosterLookupDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordBreakerTransition tracks a circuit breaker moving between states.
// state values follow the gauge help text.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
