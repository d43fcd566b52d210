package ports

import (
	"context"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	// ListByOwner returns the tickets created by userID, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Ticket, error)
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
}
