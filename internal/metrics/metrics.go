// Package metrics exposes the Prometheus instruments recorded by the catalog
// adapter, the lifecycle harness and the cleanup reaper.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instruments used for monitoring catalog runs.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LifecycleRuns   *prometheus.CounterVec
	CleanupOutcomes *prometheus.CounterVec
	LeaksPending    prometheus.Gauge
}

// NewMetrics creates a new Metrics instance registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total catalog requests by operation and HTTP status code (0 for transport failures).",
		}, []string{"operation", "code"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		LifecycleRuns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_lifecycle_runs_total",
			Help: "Total lifecycle cases by result.",
		}, []string{"result"}),
		CleanupOutcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_cleanup_outcomes_total",
			Help: "Total cleanup attempts by outcome (deleted, already_absent, failed).",
		}, []string{"outcome"}),
		LeaksPending: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "catalog_leaks_pending",
			Help: "Leaked employees still pending in the cleanup journal after the last reap.",
		}),
	}

	metrics.LifecycleRuns.WithLabelValues("success")
	metrics.LifecycleRuns.WithLabelValues("failure")

	return metrics
}

// ObserveRequest records one catalog request. statusCode is 0 when no
// response was received.
func (m *Metrics) ObserveRequest(operation string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveLifecycle records the result of one lifecycle case.
func (m *Metrics) ObserveLifecycle(passed bool) {
	if m == nil {
		return
	}
	result := "failure"
	if passed {
		result = "success"
	}
	m.LifecycleRuns.WithLabelValues(result).Inc()
}

// ObserveCleanup records one cleanup outcome.
func (m *Metrics) ObserveCleanup(outcome string) {
	if m == nil {
		return
	}
	m.CleanupOutcomes.WithLabelValues(outcome).Inc()
}

// SetLeaksPending records the journal backlog.
func (m *Metrics) SetLeaksPending(n int) {
	if m == nil {
		return
	}
	m.LeaksPending.Set(float64(n))
}
