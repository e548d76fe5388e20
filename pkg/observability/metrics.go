// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the vendor login service.
package observability

import "github.com/prometheus/client_golang/prometheus"

// StoreBuckets defines histogram buckets suited for SPARQL endpoint
// latencies, ranging from 5ms to 30s.
var StoreBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30}

var (
	// RequestsTotal counts all HTTP requests by method, path, and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_login_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method and path.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendor_login_request_duration_seconds",
			Help:    "Request duration",
			Buckets: StoreBuckets,
		},
		[]string{"method", "path"},
	)

	// LoginsTotal counts login attempts by outcome (success, denied, error).
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_login_logins_total",
			Help: "Login attempts",
		},
		[]string{"outcome"},
	)

	// LogoutsTotal counts logout requests by outcome (success, error).
	LogoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_login_logouts_total",
			Help: "Logout requests",
		},
		[]string{"outcome"},
	)

	// StoreRequestsTotal counts SPARQL endpoint calls by operation
	// (query, update) and outcome (ok, error).
	StoreRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_login_store_requests_total",
			Help: "SPARQL endpoint requests",
		},
		[]string{"operation", "outcome"},
	)

	// StoreRequestDuration records SPARQL endpoint latency in seconds by operation.
	StoreRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendor_login_store_request_duration_seconds",
			Help:    "SPARQL endpoint latency",
			Buckets: StoreBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		LoginsTotal,
		LogoutsTotal,
		StoreRequestsTotal,
		StoreRequestDuration,
	)
}
