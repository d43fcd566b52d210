package ports

import (
	"context"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// Role request actions accepted by RoleService.Resolve.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// RoleService is the admin-side role request queue plus direct role overrides.
type RoleService interface {
	// PendingRequests lists users awaiting an elevation decision.
	PendingRequests(ctx context.Context) ([]*domain.User, error)
	// Resolve applies an approve or reject transition to a pending request
	// and returns the updated user with a status message.
	Resolve(ctx context.Context, adminID, userID, action string) (*domain.User, string, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// OverrideRole sets a user's effective role directly, bypassing the
	// request queue. Admin only; validated against the closed role set.
	OverrideRole(ctx context.Context, adminID, userID, role string) (*domain.User, error)
}
