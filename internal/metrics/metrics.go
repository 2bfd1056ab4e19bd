// Package metrics holds Prometheus instruments used across the service.
// All collectors register with the global registry, so importing this
// package anywhere is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DriftRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_drift_retries_total",
			Help: "Writes retried once after the store reported a missing column.",
		})

	SyncEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "livesync_events_total",
			Help: "Row-change notifications received, by operation.",
		},
		[]string{"op"})

	StreamClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stream_clients",
			Help: "SSE clients currently subscribed to a change stream.",
		})

	AdminActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_actions_total",
			Help: "Dashboard actions by kind and outcome.",
		},
		[]string{"action", "outcome"})
)

func init() {
	prometheus.MustRegister(
		DriftRetriesTotal,
		SyncEventsTotal,
		StreamClients,
		AdminActionsTotal,
	)
}
