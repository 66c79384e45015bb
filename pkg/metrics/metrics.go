package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation paths.
const (
	PathPrimary          = "primary"
	PathPrimaryWrapped   = "primary_wrapped"
	PathSecondary        = "secondary"
	PathSecondaryWrapped = "secondary_wrapped"
	PathOffline          = "offline"
)

var (
	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hustle_generation_total",
			Help: "Total number of recommendations generated, by fallback path",
		},
		[]string{"path"},
	)

	ProviderCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hustle_provider_calls_total",
			Help: "Total number of LLM provider calls by model and outcome",
		},
		[]string{"model", "outcome"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hustle_provider_call_duration_seconds",
			Help:    "Duration of LLM provider calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"model"},
	)
)

func RecordGeneration(path string) {
	GenerationTotal.WithLabelValues(path).Inc()
}

func RecordProviderCall(model, outcome string, took time.Duration) {
	ProviderCalls.WithLabelValues(model, outcome).Inc()
	ProviderCallDuration.WithLabelValues(model).Observe(took.Seconds())
}
