// Package metrics defines and registers all custom Prometheus metrics for the
// user directory service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes that registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userdirectory"

// ── User workflow metrics ─────────────────────────────────────────────────────

// UsersCreatedTotal counts successfully created accounts.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// UsersUpdatedTotal counts successful account edits.
var UsersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of user accounts updated.",
	},
)

// UsersDeletedTotal counts successful account deletions.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// UserConflictsTotal counts rejected writes due to a uniqueness conflict.
// Label:
//   - field: "username" or "email"
var UserConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_conflicts_total",
		Help:      "Total number of create attempts rejected by a uniqueness conflict.",
	},
	[]string{"field"},
)

// ── Upstream lookup metrics ───────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the country/city service.
// Labels:
//   - endpoint: "countries" or "cities"
//   - outcome:  "success" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests forwarded to the country/city service.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures the latency of upstream lookups.
// Label:
//   - endpoint: "countries" or "cities"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of country/city service lookups.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)
