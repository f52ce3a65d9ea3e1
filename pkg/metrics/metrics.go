// Package metrics holds the service's Prometheus collectors. Register once
// from main via MustRegisterMetrics before serving traffic.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// QuoteRequestsTotal counts quote computations by chain and outcome
	// ("ok", "invalid_token", "price_unavailable", "invalid_amount").
	QuoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_gateway_quote_requests_total",
			Help: "Quote computations by chain and outcome.",
		},
		[]string{"chain", "outcome"},
	)

	// PriceFeedFailuresTotal counts total price feed request failures, i.e.
	// snapshots that were served entirely from the static fallback table.
	PriceFeedFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_gateway_price_feed_failures_total",
			Help: "Price feed batch request failures by chain.",
		},
		[]string{"chain"},
	)

	// PositionSourceAttemptsTotal counts aggregation source attempts by
	// chain, source name and outcome ("ok", "error", "empty").
	PositionSourceAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_gateway_position_source_attempts_total",
			Help: "Position data source attempts by chain, source and outcome.",
		},
		[]string{"chain", "source", "outcome"},
	)

	// QuoteDurationSeconds observes end-to-end quote latency, dominated by
	// the price feed round trip.
	QuoteDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dex_gateway_quote_duration_seconds",
			Help:    "Quote computation latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chain"},
	)
)

// MustRegisterMetrics registers all collectors with the default registry.
// Panics on duplicate registration, so call it exactly once.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		QuoteRequestsTotal,
		PriceFeedFailuresTotal,
		PositionSourceAttemptsTotal,
		QuoteDurationSeconds,
	)
}
