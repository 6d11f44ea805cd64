package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	apiRequests         *prometheus.CounterVec
	apiDuration         prometheus.Histogram
	fetchesCompleted    *prometheus.CounterVec
	submissions         *prometheus.CounterVec
	submissionDuration  prometheus.Histogram
	sessionEvents       *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
	mountedViews        prometheus.Gauge
	rateLimited         prometheus.Counter
	httpErrors          *prometheus.CounterVec
}

// NewPrometheusMetrics registers the web client metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_api_requests_total",
				Help: "Total number of finance API requests by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		apiDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_api_request_duration_milliseconds",
				Help:    "Finance API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		fetchesCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "view_fetches_total",
				Help: "Total number of view fetches by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_submissions_total",
				Help: "Total number of form submissions by form and outcome",
			},
			[]string{"operation", "status"},
		),
		submissionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "form_submission_duration_milliseconds",
				Help:    "Form submission duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		sessionEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_events_total",
				Help: "Total number of credential store events",
			},
			[]string{"event_type"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		mountedViews: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mounted_transaction_views",
				Help: "Current number of mounted transaction view snapshots",
			},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_limit_exceeded_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
		httpErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of error responses by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "finance_api.request":
		m.apiRequests.WithLabelValues(operation, status).Inc()
	case "fetch_completed":
		m.fetchesCompleted.WithLabelValues(operation, status).Inc()
	case "submission_completed":
		m.submissions.WithLabelValues(operation, status).Inc()
	case "session_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.sessionEvents.WithLabelValues(eventType).Inc()
		}
	case "rate_limit_exceeded":
		m.rateLimited.Inc()
	case "http_error":
		if code := tags["code"]; code != "" {
			m.httpErrors.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "finance_api.request":
		m.apiDuration.Observe(float64(duration.Milliseconds()))
	case "submission":
		m.submissionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "mounted_views":
		m.mountedViews.Set(value)
	}
}
