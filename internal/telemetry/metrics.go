// Package telemetry provides Prometheus metrics for the prompt service.
//
// Purpose:
//   RED-style metrics for the /generate endpoint plus token-usage counters,
//   exported via the /metrics endpoint of cmd/server. Lambda deployments
//   still record them; scraping is a platform concern.
//
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal tracks handled requests by outcome.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bedrock_prompt_requests_total",
			Help: "Total number of handled generate requests",
		},
		[]string{"model_id", "outcome"}, // outcome: "success", "rejected", "failed"
	)

	// RequestDuration tracks end-to-end handler latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bedrock_prompt_request_duration_seconds",
			Help:    "End-to-end generate request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"model_id", "outcome"},
	)

	// ErrorTotal tracks failures by catalog error code.
	ErrorTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bedrock_prompt_errors_total",
			Help: "Total number of errors by error code",
		},
		[]string{"model_id", "error_code"},
	)

	// TokensTotal tracks token usage reported by the model.
	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bedrock_prompt_tokens_total",
			Help: "Total tokens consumed by successful invocations",
		},
		[]string{"model_id", "direction"}, // direction: "input", "output"
	)
)

// RecordRequest records one handled request.
func RecordRequest(modelID, outcome string, duration time.Duration) {
	RequestTotal.WithLabelValues(modelID, outcome).Inc()
	RequestDuration.WithLabelValues(modelID, outcome).Observe(duration.Seconds())
}

// RecordError records a failure by catalog code.
func RecordError(modelID, errorCode string) {
	ErrorTotal.WithLabelValues(modelID, errorCode).Inc()
}

// RecordUsage records token usage from a successful invocation.
func RecordUsage(modelID string, inputTokens, outputTokens int) {
	TokensTotal.WithLabelValues(modelID, "input").Add(float64(inputTokens))
	TokensTotal.WithLabelValues(modelID, "output").Add(float64(outputTokens))
}
