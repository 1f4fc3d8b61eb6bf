package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; generation calls dominate the tail.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	ModerationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "safegate_moderations_total",
			Help: "Total number of moderated turns by outcome",
		},
		[]string{"source_type", "crisis_level"},
	)

	ModerationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safegate_moderation_latency_ms",
			Help:    "End-to-end moderation latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"source_type"},
	)

	GatewayCallLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "safegate_gateway_latency_ms",
			Help:    "Language model gateway call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"purpose"}, // generate, critique, regenerate
	)

	GatewayFailures = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "safegate_gateway_failures_total",
			Help: "Total number of failed language model gateway calls",
		},
	)

	RegenerationTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "safegate_regenerations_total",
			Help: "Total number of regeneration attempts across all turns",
		},
	)
)

// Handler exposes the scrape endpoint for the private registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
