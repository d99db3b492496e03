// Package metrics defines the Prometheus instrumentation for the linen
// delivery core. Collectors are registered on the default registry and
// exposed through the /metrics endpoint of the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconciliationRuns counts completed pickup-reconciliation sweeps.
	ReconciliationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "linenflow",
		Name:      "reconciliation_runs_total",
		Help:      "Number of completed pickup reconciliation sweeps.",
	})

	// ClaimConflicts counts claim attempts lost to another courier.
	ClaimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "linenflow",
		Name:      "claim_conflicts_total",
		Help:      "Number of order claims rejected because another courier won the race.",
	})

	// SettlementWrites counts individual source-order settlement writes by result.
	SettlementWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linenflow",
		Name:      "settlement_writes_total",
		Help:      "Number of pickup settlement scatter writes by result.",
	}, []string{"result"})

	// OrderEventsPublished counts order-changed events pushed to the feed by result.
	OrderEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linenflow",
		Name:      "order_events_published_total",
		Help:      "Number of order-changed events published to the change feed by result.",
	}, []string{"result"})
)

// Result label values for the settlement and event-publish counters.
const (
	ResultOK             = "ok"
	ResultFailed         = "failed"
	ResultAlreadySettled = "already_settled"
)
