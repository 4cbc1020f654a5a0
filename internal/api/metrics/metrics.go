// Package metrics defines and registers all custom Prometheus metrics for the
// tracking API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ── Vendor adapter metrics ────────────────────────────────────────────────────

// VendorRequestsTotal counts completed vendor calls.
// Labels:
//   - vendor: adapter name (e.g. "logitude", "dpworld", "tracktrace")
//   - outcome: "success", "client_error", "exhausted_retries", or "unexpected"
var VendorRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_requests_total",
		Help:      "Total number of vendor API calls, by vendor and outcome.",
	},
	[]string{"vendor", "outcome"},
)

// VendorRetriesTotal counts individual retry attempts (not counting the first try).
// Label:
//   - vendor: adapter name
var VendorRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_retries_total",
		Help:      "Total number of vendor request retries after a retryable failure.",
	},
	[]string{"vendor"},
)

// VendorRequestDuration measures wall time of a vendor call including retries
// and backoff.
// Label:
//   - vendor: adapter name
var VendorRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vendor_request_duration_seconds",
		Help:      "Duration of vendor API calls from first attempt to final outcome.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"vendor"},
)

// ── Resolution metrics ────────────────────────────────────────────────────────

// ResolutionsTotal counts shipment resolutions through the fallback chain.
// Labels:
//   - source: the source that answered ("local", a vendor name, or "none")
//   - outcome: "hit" or "miss"
var ResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_total",
		Help:      "Total number of shipment resolutions, by winning source and outcome.",
	},
	[]string{"source", "outcome"},
)

// ── Update metrics ────────────────────────────────────────────────────────────

// UpdatesDedupTotal counts idempotency checks on write operations.
// Label:
//   - result: "hit" (duplicate, rejected) or "miss" (new update, applied)
var UpdatesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_dedup_total",
		Help:      "Total number of update idempotency checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// VendorPushesTotal counts write-backs propagated to vendor systems.
// Labels:
//   - vendor: adapter name
//   - outcome: "success" or "error"
var VendorPushesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_pushes_total",
		Help:      "Total number of update pushes to vendor APIs, by vendor and outcome.",
	},
	[]string{"vendor", "outcome"},
)

// PushQueueDepth tracks the number of pending vendor pushes in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var PushQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "push_queue_depth",
		Help:      "Current number of vendor pushes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Position metrics ──────────────────────────────────────────────────────────

// VesselPositionsTotal counts served vessel positions.
// Label:
//   - source: "simulated" or "live"
var VesselPositionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vessel_positions_total",
		Help:      "Total number of vessel positions served, by position source.",
	},
	[]string{"source"},
)
