package domain

import "time"

// AuditAction identifies what happened to a subject.
type AuditAction string

const (
	AuditUserRegistered AuditAction = "user_registered"
	AuditRoleRequested  AuditAction = "role_requested"
	AuditRoleApproved   AuditAction = "role_approved"
	AuditRoleRejected   AuditAction = "role_rejected"
	AuditRoleOverridden AuditAction = "role_overridden"
	AuditTicketAssigned AuditAction = "ticket_assigned"
)

// AuditEvent is an append-only record of a role or assignment decision.
// ActorID is empty for self-service actions such as registration.
type AuditEvent struct {
	Action    AuditAction `json:"action"`
	ActorID   string      `json:"actorId,omitempty"`
	SubjectID string      `json:"subjectId"`
	Detail    string      `json:"detail,omitempty"`
	At        time.Time   `json:"at"`
}
