package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RelayEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_events_total",
			Help: "Total number of inbound events routed through the relay pipeline (count)",
		},
		[]string{"kind", "status"},
	)

	StoreAppendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_appends_total",
			Help: "Total number of record appends per collection (count)",
		},
		[]string{"collection", "status"},
	)

	StoreAppendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_append_duration_ms",
			Help:    "Duration of the read-append-write cycle in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"collection"},
	)

	CorruptCollectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_corrupt_collections_total",
			Help: "Total number of collection files reset after a parse failure (count)",
		},
		[]string{"collection"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total number of admin notification sends (count)",
		},
		[]string{"status"},
	)

	NotificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_duration_ms",
			Help:    "Duration of admin notification sends in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	BotCommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total number of recognized bot commands handled (count)",
		},
		[]string{"command"},
	)

	RateLimitRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_requests_total",
			Help: "Total number of requests checked against rate limit (count)",
		},
		[]string{"status"},
	)

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open) (state code)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker (count)",
		},
		[]string{"name", "state"},
	)

	CircuitBreakerFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of failures through circuit breaker (count)",
		},
		[]string{"name"},
	)
)

func RegisterRelayMetrics() {
	prometheus.MustRegister(
		RelayEventsTotal,
		StoreAppendsTotal,
		StoreAppendDuration,
		CorruptCollectionsTotal,
		NotificationsTotal,
		NotificationDuration,
		BotCommandsTotal,
		RateLimitRequestsTotal,
	)
}

func RegisterCircuitBreakerMetrics() {
	prometheus.MustRegister(
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerFailures,
	)
}
