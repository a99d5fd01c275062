package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every series the service exports.
const Namespace = "ncnews"

var sizeBuckets = prometheus.ExponentialBuckets(100, 10, 8)

// HTTP series. path is always a normalized route pattern.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served, by method, route and status.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration covers 5ms to 10s.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time to serve a request.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	HTTPRequestSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_size_bytes",
		Help:      "Request body size.",
		Buckets:   sizeBuckets,
	}, []string{"method", "path"})

	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "Response body size.",
		Buckets:   sizeBuckets,
	}, []string{"method", "path"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Requests currently being served.",
	})
)

// Storage series.
var (
	// DBQueryDuration is labelled with the repository operation, e.g.
	// "article.list", and an ok/error outcome.
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "Repository call latency.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"operation", "outcome"})

	DBConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "db",
		Name:      "connections_in_use",
		Help:      "Pool connections currently checked out.",
	})

	DBConnectionsIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "db",
		Name:      "connections_idle",
		Help:      "Pool connections open but unused.",
	})

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "breaker",
		Name:      "state",
		Help:      "Breaker state: 0 closed, 1 half-open, 2 open.",
	}, []string{"name"})

	CircuitBreakerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "breaker",
		Name:      "transitions_total",
		Help:      "Breaker state changes, by the state entered.",
	}, []string{"name", "to"})
)

// RecordHTTPRequest observes one served request. A zero requestSize (no
// body or unknown length) is not observed.
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}

// RecordDBQuery observes a repository call.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	DBQueryDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// RecordDBStats copies pool statistics into the pool gauges.
func RecordDBStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

// RecordBreakerState publishes a transition. to is the gobreaker state name
// and level its gauge value.
func RecordBreakerState(name, to string, level int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(level))
	CircuitBreakerTransitions.WithLabelValues(name, to).Inc()
}
