package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"hr-recommendation/internal/recommendation"
)

var (
	// Recommendation outcomes
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrrec_recommendations_total",
			Help: "Total number of recommendation requests by source and fallback reason",
		},
		[]string{"source", "reason"},
	)

	RejectedRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hrrec_rejected_records_total",
			Help: "Total number of provider records dropped by validation",
		},
	)

	// LLM metrics
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hrrec_llm_request_duration_seconds",
			Help:    "LLM request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~1min
		},
		[]string{"provider", "model", "status"},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrrec_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hrrec_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Recorder implements recommendation.Recorder on the package counters.
type Recorder struct{}

// NewRecorder returns a Recorder.
func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) RecordOutcome(source recommendation.Source, reason string) {
	RecommendationsTotal.WithLabelValues(string(source), reason).Inc()
}

func (Recorder) RecordRejected(n int) {
	RejectedRecordsTotal.Add(float64(n))
}

// ObserveLLMAttempt matches llmprovider.Config.OnAttempt.
func ObserveLLMAttempt(provider, model string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	LLMRequestDuration.WithLabelValues(provider, model, status).Observe(elapsed.Seconds())
}
