package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// BookingsCreated counts booking creations by outcome (created|payment_failed).
	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "bookings_created_total",
		Help:      "Bookings created, by payment initiation outcome",
	}, []string{"outcome"})

	// PaymentTransitions counts payment status changes by the resulting status.
	PaymentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "payment_transitions_total",
		Help:      "Payment status transitions, by resulting status",
	}, []string{"status"})

	// EmailsSent counts e-mail deliveries by template and outcome (sent|failed).
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "emails_total",
		Help:      "E-mail deliveries, by template and outcome",
	}, []string{"template", "outcome"})

	// GatewayRequestDuration observes payment gateway round trips.
	GatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "travel",
		Name:      "payment_gateway_request_duration_seconds",
		Help:      "Latency of payment gateway requests",
		Buckets:   DefaultBuckets,
	}, []string{"operation", "code"})
)
