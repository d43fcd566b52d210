package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/deskware/helpdesk-system/internal/core/domain"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// RoleService is the admin workflow over pending role requests, plus the
// direct role override.
type RoleService struct {
	repo   ports.UserRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewRoleService(repo ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, audit: audit, logger: logger}
}

func (s *RoleService) PendingRequests(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListPending(ctx)
}

// Resolve approves or rejects a pending elevation request. The transition is
// terminal: a second call on the same user fails with ErrNoPendingRequest and
// leaves the first decision untouched.
func (s *RoleService) Resolve(ctx context.Context, adminID, userID, action string) (*domain.User, string, error) {
	if action != ports.ActionApprove && action != ports.ActionReject {
		return nil, "", domain.ErrInvalidAction
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	var message string
	var auditAction domain.AuditAction
	now := time.Now().UTC()

	if action == ports.ActionApprove {
		if err := user.ApproveRoleRequest(adminID, now); err != nil {
			return nil, "", err
		}
		message = fmt.Sprintf("%s has been promoted to %s", user.DisplayName, user.Role)
		auditAction = domain.AuditRoleApproved
	} else {
		if err := user.RejectRoleRequest(); err != nil {
			return nil, "", err
		}
		message = fmt.Sprintf("Role request for %s has been rejected", user.DisplayName)
		auditAction = domain.AuditRoleRejected
	}
	user.UpdatedAt = now

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().
		Str("admin_id", adminID).
		Str("user_id", userID).
		Str("action", action).
		Str("role", string(updated.Role)).
		Msg("role request resolved")

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Action:    auditAction,
			ActorID:   adminID,
			SubjectID: userID,
			Detail:    string(updated.Role),
			At:        now,
		})
	}

	return updated, message, nil
}

func (s *RoleService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListAll(ctx)
}

// OverrideRole sets a user's effective role directly. This is the only path
// by which a rejected requester can still be elevated.
func (s *RoleService) OverrideRole(ctx context.Context, adminID, userID, role string) (*domain.User, error) {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = parsed
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("admin_id", adminID).
		Str("user_id", userID).
		Str("role", string(parsed)).
		Msg("role overridden")

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Action:    domain.AuditRoleOverridden,
			ActorID:   adminID,
			SubjectID: userID,
			Detail:    string(parsed),
			At:        time.Now().UTC(),
		})
	}

	return updated, nil
}
