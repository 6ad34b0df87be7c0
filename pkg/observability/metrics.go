// Package observability provides Prometheus metrics, OpenTelemetry tracing
// helpers and HTTP middleware for monitoring the mathsolver service.
package observability

import "github.com/prometheus/client_golang/prometheus"

// ProviderBuckets defines histogram buckets suited for remote solver
// latencies, ranging from 50ms to 120s.
var ProviderBuckets = []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

// Solve outcome labels.
const (
	OutcomeSolved    = "solved"
	OutcomeExhausted = "exhausted"
	OutcomeRejected  = "rejected"
)

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathsolver_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mathsolver_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: ProviderBuckets,
		},
		[]string{"method"},
	)

	// InFlightRequests tracks the number of HTTP requests being served.
	InFlightRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mathsolver_requests_in_flight",
			Help: "HTTP requests currently being served",
		},
	)

	// ProviderRequestsTotal counts HTTP exchanges with providers by status
	// code, or "error" when no response was received.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathsolver_provider_requests_total",
			Help: "Provider HTTP requests",
		},
		[]string{"provider", "status"},
	)

	// ProviderAttemptsTotal counts chain attempts by provider and outcome
	// ("success" or a failure kind).
	ProviderAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathsolver_provider_attempts_total",
			Help: "Provider attempts by outcome",
		},
		[]string{"provider", "outcome"},
	)

	// ProviderLatency records attempt latency in seconds.
	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mathsolver_provider_latency_seconds",
			Help:    "Provider attempt latency",
			Buckets: ProviderBuckets,
		},
		[]string{"provider"},
	)

	// SolveOutcomesTotal counts solve requests by final outcome.
	SolveOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathsolver_solve_outcomes_total",
			Help: "Solve requests by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		InFlightRequests,
		ProviderRequestsTotal,
		ProviderAttemptsTotal,
		ProviderLatency,
		SolveOutcomesTotal,
	)
}
