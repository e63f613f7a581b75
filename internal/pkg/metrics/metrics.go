/*
Package metrics exposes Prometheus instrumentation for the application.

It registers counters for session events and chat bridge outcomes plus a latency
histogram for the remote AI call, and provides the /metrics HTTP handler.
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SessionEvents counts session lifecycle events by method
	// (login, signup, guest, logout).
	SessionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcampus_session_events_total",
		Help: "Session lifecycle events by method.",
	}, []string{"method"})

	// ChatRequests counts chat bridge calls by outcome
	// (ok, no_reply, timeout, unreachable, rejected).
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcampus_chat_requests_total",
		Help: "Chat bridge calls by outcome.",
	}, []string{"outcome"})

	// ChatLatency observes the duration of remote AI calls in seconds.
	ChatLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mindcampus_chat_request_duration_seconds",
		Help:    "Duration of remote AI chat calls.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// GuardDecisions counts route guard outcomes by decision.
	GuardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindcampus_guard_decisions_total",
		Help: "Route guard outcomes by decision.",
	}, []string{"decision"})
)

// Handler returns the HTTP handler serving the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
