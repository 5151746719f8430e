// Package metrics defines and registers all custom Prometheus metrics for
// the membership system. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "membership"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "invalid", "duplicate", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "member", "admin", "invalid", "denied", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AdminMutationsTotal counts admin-flag mutations performed through the
// directory endpoints.
// Label:
//   - action: "grant" or "revoke"
var AdminMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_mutations_total",
		Help:      "Total number of admin grant/revoke operations, by action.",
	},
	[]string{"action"},
)

// SessionsDestroyedTotal counts explicit session terminations.
// Label:
//   - reason: "logout" or "self_revoke"
var SessionsDestroyedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_destroyed_total",
		Help:      "Total number of sessions destroyed explicitly, by reason.",
	},
	[]string{"reason"},
)
