// Package metrics defines and registers all custom Prometheus metrics for
// the accounts API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// UsersCreatedTotal counts successful sign-ups.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// SignupConflictsTotal counts sign-up attempts skipped because the email was
// already registered.
var SignupConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_conflicts_total",
		Help:      "Total number of sign-ups rejected by the email uniqueness constraint.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_found", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PasscodesIssuedTotal counts one-time passcodes handed out.
var PasscodesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "passcodes_issued_total",
		Help:      "Total number of one-time passcodes issued.",
	},
)

// StorageOpDuration measures the latency of persistence operations.
// Label:
//   - op: "create", "find", or "find_by_pk"
var StorageOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "storage_op_duration_seconds",
		Help:      "Duration of persistence operations against Postgres.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
