package ports

import (
	"context"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// AuditRepository persists audit events to the audit_events collection.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditSink accepts audit events for asynchronous recording. Record must not
// block the request path; delivery is best effort.
type AuditSink interface {
	Record(event domain.AuditEvent)
}
