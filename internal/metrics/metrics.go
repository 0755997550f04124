package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Business metrics
	eventsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_events_recorded_total",
			Help: "Total number of visit events recorded one by one",
		},
		[]string{"kind"},
	)

	wizardTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_wizard_transitions_total",
			Help: "Wizard transitions by step and result",
		},
		[]string{"step", "result"},
	)

	statsCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_stats_cache_total",
			Help: "Stats cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	storeEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "visit_store_events",
			Help: "Number of events currently held in memory",
		},
	)

	publishFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visit_publish_failures_total",
			Help: "Domain events that could not be published",
		},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordEventRecorded(kind string) {
	eventsRecordedTotal.WithLabelValues(kind).Inc()
}

func RecordWizardTransition(step string, ok bool) {
	result := "ok"
	if !ok {
		result = "rejected"
	}
	wizardTransitionsTotal.WithLabelValues(step, result).Inc()
}

func RecordStatsCache(result string) {
	statsCacheTotal.WithLabelValues(result).Inc()
}

func SetStoreEvents(n int) {
	storeEvents.Set(float64(n))
}

func RecordPublishFailure() {
	publishFailuresTotal.Inc()
}

// MetricsHandler returns the Prometheus metrics handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
