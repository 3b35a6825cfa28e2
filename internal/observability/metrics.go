package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthGateRedirects counts redirects issued by the locale gate by reason.
	AuthGateRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookstemma_edge_auth_gate_redirects_total",
		Help: "Total number of redirects issued by the locale-aware auth gate",
	}, []string{"reason"})

	// WebPRewrites counts variant requests rewritten to their WebP sibling.
	WebPRewrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cookstemma_edge_webp_rewrites_total",
		Help: "Total number of image variant requests rewritten to WebP",
	})

	// WebPTranscodes counts WebP variants generated on demand from the JPEG source.
	WebPTranscodes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cookstemma_edge_webp_transcodes_total",
		Help: "Total number of WebP variants generated from JPEG sources",
	})

	// OptimisticReverts counts optimistic toggles rolled back after a failed call.
	OptimisticReverts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookstemma_edge_optimistic_reverts_total",
		Help: "Total number of optimistic toggles reverted after a failed call",
	}, []string{"kind"})

	// GatewayToggles counts toggles forwarded to the backend by kind and outcome.
	GatewayToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookstemma_edge_gateway_toggles_total",
		Help: "Total number of toggles forwarded to the backend",
	}, []string{"kind", "outcome"})
)
