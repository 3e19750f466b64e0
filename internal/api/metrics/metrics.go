// Package metrics defines and registers all custom Prometheus metrics for the
// bazaar API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bazaar"

// ElevationSubmittedTotal counts newly created elevation requests.
// Label:
//   - requested_role: "chef" or "admin"
var ElevationSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "elevation_submitted_total",
		Help:      "Total number of elevation requests created, by requested role.",
	},
	[]string{"requested_role"},
)

// ElevationDuplicatesTotal counts submits that matched an existing pending
// request and were treated as idempotent no-ops.
var ElevationDuplicatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "elevation_duplicates_total",
		Help:      "Total number of duplicate elevation submits skipped.",
	},
)

// ElevationDecisionsTotal counts terminal admin decisions.
// Label:
//   - decision: "approved" or "rejected"
var ElevationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "elevation_decisions_total",
		Help:      "Total number of elevation requests decided, by decision.",
	},
	[]string{"decision"},
)

// RoleCacheTotal counts role cache lookups.
// Label:
//   - result: "hit" or "miss"
var RoleCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_total",
		Help:      "Total number of role cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// FraudFlagsTotal counts principals flagged as fraud by an admin.
var FraudFlagsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fraud_flags_total",
		Help:      "Total number of principals flagged as fraud.",
	},
)
