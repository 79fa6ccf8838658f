package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Widget requests served, by widget kind and outcome.
	WidgetRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_requests_total",
			Help: "Total number of widget requests handled (by kind and status).",
		},
		[]string{"kind", "status"}, // status = "ok" | "denied" | "error"
	)

	// Requests rejected by credential validation.
	AuthDenialsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "widget_auth_denials_total",
			Help: "Number of widget requests denied for a bad or missing API key.",
		},
	)

	// Business values the requested widget kind could not represent.
	EnvelopeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_envelope_errors_total",
			Help: "Number of envelope build failures (by widget kind).",
		},
		[]string{"kind"},
	)

	// End-to-end widget request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "widget_request_duration_seconds",
			Help:    "Duration of widget requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms → ~1s
		},
		[]string{"kind"},
	)
)
