// Package telemetry holds the Prometheus collectors of the sync engine and
// of the reference API server.
package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/zotero-sync/models"
)

const namespace = "zsync"

// Session outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomePartial   = "partial"
	OutcomeAborted   = "aborted"
	OutcomeCancelled = "cancelled"
)

// SyncMetrics counts sync sessions and their effects. A nil *SyncMetrics is
// valid and records nothing.
type SyncMetrics struct {
	registry *prometheus.Registry

	sessions  *prometheus.CounterVec
	applied   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	submitted prometheus.Counter
	conflicts prometheus.Counter
	deletions prometheus.Counter
	duration  prometheus.Histogram
}

// NewSyncMetrics registers the sync collectors on a fresh registry.
func NewSyncMetrics() *SyncMetrics {
	m := &SyncMetrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Sync sessions by outcome.",
		}, []string{"outcome"}),
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_applied_total",
			Help:      "Remote changes applied to the local replica.",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "object_failures_total",
			Help:      "Objects that could not be synchronised, by failure kind.",
		}, []string{"kind"}),
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_submitted_total",
			Help:      "Local edits accepted by the server.",
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "version_conflicts_total",
			Help:      "Precondition failures answered with a refresh.",
		}),
		deletions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletions_confirmed_total",
			Help:      "Local deletions acknowledged by the server.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Wall time of sync sessions.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}

	m.registry.MustRegister(m.sessions, m.applied, m.failures, m.submitted, m.conflicts, m.deletions, m.duration)
	return m
}

// Registry returns the registry holding the collectors.
func (m *SyncMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// Conflict counts one version conflict.
func (m *SyncMetrics) Conflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

// ObserveSession records the outcome of a finished session. cancelled
// reports whether err is a cancellation rather than a fatal failure.
func (m *SyncMetrics) ObserveSession(summary models.SyncSummary, err error, cancelled bool) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	switch {
	case cancelled:
		outcome = OutcomeCancelled
	case err != nil:
		outcome = OutcomeAborted
	case summary.Partial():
		outcome = OutcomePartial
	}
	m.sessions.WithLabelValues(outcome).Inc()

	m.applied.WithLabelValues("created").Add(float64(summary.Created))
	m.applied.WithLabelValues("updated").Add(float64(summary.Updated))
	m.applied.WithLabelValues("removed").Add(float64(summary.Removed))
	m.submitted.Add(float64(summary.Submitted))
	m.deletions.Add(float64(summary.DeletionsConfirmed))

	for _, f := range summary.Failures {
		m.failures.WithLabelValues(string(f.Kind)).Inc()
	}

	if !summary.StartedAt.IsZero() && !summary.FinishedAt.IsZero() {
		m.duration.Observe(summary.FinishedAt.Sub(summary.StartedAt).Seconds())
	}
}

// WriteTextfile dumps the current values in the text exposition format, for
// the node exporter textfile collector.
func (m *SyncMetrics) WriteTextfile(path string) error {
	if m == nil {
		return errors.New("metrics are disabled")
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
