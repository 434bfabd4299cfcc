// Package metrics defines and registers all custom Prometheus metrics for
// the inventory API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry on
// import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Sale metrics ──────────────────────────────────────────────────────────────

// SalesPostedTotal counts successfully posted sale transactions.
var SalesPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_posted_total",
		Help:      "Total number of sale transactions successfully posted.",
	},
)

// SalesFailedTotal counts rejected sale postings.
// Label:
//   - reason: "invalid_reference", "insufficient_stock", or "error"
var SalesFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_failed_total",
		Help:      "Total number of sale postings rejected, by reason.",
	},
	[]string{"reason"},
)

// SalePostingDuration measures end-to-end sale posting time.
// Label:
//   - outcome: "ok" or "error"
var SalePostingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sale_posting_duration_seconds",
		Help:      "Duration of sale posting from request to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
