package ports

import (
	"context"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// RegisterInput carries a signup request as received on the wire. RequestedRole
// is the raw string; the service normalises it (unknown values register as
// plain end users).
type RegisterInput struct {
	Name               string
	Email              string
	Password           string
	RequestedRole      string
	AgentJustification string
	AdminCode          string
}

// RegisterResult is the outcome of a successful registration: a signed token
// for the new account plus a human-readable status message.
type RegisterResult struct {
	Token      string
	User       *domain.User
	RoleStatus domain.RoleStatus
	Message    string
}

// UpdateProfileInput carries a partial profile edit; nil fields are untouched.
// Role fields are deliberately absent — only the admin workflow mutates them.
type UpdateProfileInput struct {
	DisplayName *string
	Email       *string
	Bio         *string
	Avatar      *string
}

// AuthService implements registration, login and profile self-service.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
}

// LoginLimiter throttles repeated failed logins per email. Implementations
// fail open: when the backing store is unreachable, logins proceed.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) bool
	RecordFailure(ctx context.Context, email string)
}
