package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mateusfigmelo/msc-backend/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Application workflow metrics
	ApplicationSubmissionsCounter prometheus.Counter
	ApplicationTransitionsCounter prometheus.CounterVec

	// Notification metrics
	NotificationFailuresCounter prometheus.Counter

	// Content metrics
	EventOperationsCounter   prometheus.CounterVec
	WebinarOperationsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ApplicationSubmissionsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_application_submissions_total",
			Help: "Total number of membership applications submitted",
		},
	)

	ApplicationTransitionsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_application_transitions_total",
			Help: "Total number of application status transitions",
		},
		[]string{"to_status"},
	)

	NotificationFailuresCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_notification_failures_total",
			Help: "Total number of notification mails that failed after a successful write",
		},
	)

	EventOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_event_operations_total",
			Help: "Total number of event operations",
		},
		[]string{"operation"},
	)

	WebinarOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_webinar_operations_total",
			Help: "Total number of webinar operations",
		},
		[]string{"operation"},
	)
}

// RecordTransition increments the counter for a status transition.
func RecordTransition(toStatus string) {
	ApplicationTransitionsCounter.WithLabelValues(toStatus).Inc()
}

// RecordEventOperation increments the counter for event operations.
func RecordEventOperation(operation string) {
	EventOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordWebinarOperation increments the counter for webinar operations.
func RecordWebinarOperation(operation string) {
	WebinarOperationsCounter.WithLabelValues(operation).Inc()
}
