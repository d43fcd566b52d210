package ports

import (
	"context"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// UserRepository is the credential store consumed by the auth and role
// services. Implementations must map duplicate-email inserts to
// domain.ErrUserExists and missing records to domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update persists the full record; role transitions are single-document
	// writes scoped by id.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	CountAll(ctx context.Context) (int64, error)
	// ListPending returns users with a pending role request, newest first.
	ListPending(ctx context.Context) ([]*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
}
