package remote_signer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_signer_sign_requests_total",
			Help: "Number of sign requests sent to the remote signer, by domain and outcome.",
		},
		[]string{"domain", "outcome"},
	)
	signRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remote_signer_sign_request_latency_seconds",
			Help:    "Latency of sign requests sent to the remote signer.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"domain"},
	)
)
