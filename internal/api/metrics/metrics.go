// Package metrics defines all custom Prometheus metrics for the helpdesk API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register with the default registry at package init; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "helpdesk"

// RegistrationsTotal counts completed registrations by role outcome.
// Label:
//   - outcome: "admin_bootstrap", "admin", "agent_pending", "end_user"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts by result.
// Label:
//   - result: "success", "failure", "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RoleRequestsResolvedTotal counts admin decisions on pending role requests.
// Label:
//   - action: "approve" or "reject"
var RoleRequestsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_requests_resolved_total",
		Help:      "Total number of role requests resolved by an admin, by action.",
	},
	[]string{"action"},
)

// TicketsCreatedTotal counts newly filed tickets.
// Label:
//   - priority: "Low", "Medium", "High", "Critical"
var TicketsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Total number of tickets created, by priority.",
	},
	[]string{"priority"},
)

// AuditEventsTotal counts audit events by write result.
// Labels:
//   - action: the audit action recorded (e.g. "role_approved")
//   - result: "ok" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events processed, by action and result.",
	},
	[]string{"action", "result"},
)
