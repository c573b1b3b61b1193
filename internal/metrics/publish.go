package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PublishRequestsTotal counts requests to the remote form-plugin API by
	// operation (list_forms, create_form, update_form, test_connection) and
	// outcome (success, error).
	PublishRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "formdex",
			Name:      "publish_requests_total",
			Help:      "Total number of remote form API requests",
		},
		[]string{"operation", "status"},
	)

	// PublishErrorsTotal counts remote form API failures by operation and
	// error class (unreachable, rejected).
	PublishErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "formdex",
			Name:      "publish_errors_total",
			Help:      "Total number of remote form API errors",
		},
		[]string{"operation", "reason"},
	)

	// PublishRequestDuration observes remote form API request latency.
	PublishRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "formdex",
			Name:      "publish_request_duration_seconds",
			Help:      "Remote form API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// RegisterPublishMetrics registers the publish collectors explicitly (no init()).
func RegisterPublishMetrics() {
	prometheus.MustRegister(PublishRequestsTotal)
	prometheus.MustRegister(PublishErrorsTotal)
	prometheus.MustRegister(PublishRequestDuration)
}
