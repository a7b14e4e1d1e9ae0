// Package metrics provides Prometheus metrics for the job-nova API service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveSessions tracks the number of sessions currently held in the store.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "avatar_active_sessions",
			Help: "Number of avatar sessions currently in the store",
		},
	)

	// SessionsCreated tracks the total number of sessions created.
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "avatar_sessions_created_total",
			Help: "Total number of avatar sessions created",
		},
	)

	// SessionsEvicted tracks the total number of sessions removed.
	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "avatar_sessions_evicted_total",
			Help: "Total number of avatar sessions removed from the store",
		},
	)

	// SessionStateTransitions tracks session status changes.
	SessionStateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avatar_session_state_transitions_total",
			Help: "Total number of avatar session status transitions",
		},
		[]string{"from_status", "to_status"},
	)

	// ObserverConnections tracks currently attached WebSocket observers.
	ObserverConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "avatar_ws_observers",
			Help: "Number of currently attached WebSocket observers",
		},
	)

	// ProviderCallDuration tracks latency of avatar/room provider calls.
	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "avatar_provider_call_duration_seconds",
			Help:    "Duration of external provider calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "op"},
	)

	// ProviderCallErrors tracks failed provider calls.
	ProviderCallErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avatar_provider_call_errors_total",
			Help: "Total number of failed external provider calls",
		},
		[]string{"provider", "op"},
	)

	// HTTPRequestsTotal tracks handled HTTP requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// RecordSessionCreated increments session creation metrics.
func RecordSessionCreated() {
	SessionsCreated.Inc()
	ActiveSessions.Inc()
}

// RecordSessionDeleted increments session removal metrics.
func RecordSessionDeleted() {
	SessionsEvicted.Inc()
	ActiveSessions.Dec()
}

// RecordStateTransition records a session status change.
func RecordStateTransition(fromStatus, toStatus string) {
	SessionStateTransitions.WithLabelValues(fromStatus, toStatus).Inc()
}
