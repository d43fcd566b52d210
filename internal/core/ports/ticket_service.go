package ports

import (
	"context"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// CreateTicketInput carries the fields an end user supplies when filing a
// ticket. Priority defaults to Medium when empty.
type CreateTicketInput struct {
	Subject     string
	Description string
	Category    string
	Priority    string
}

// UpdateTicketInput is a partial ticket edit; nil fields are untouched.
type UpdateTicketInput struct {
	Subject     *string
	Description *string
	Category    *string
	Status      *string
	Priority    *string
}

// TicketService implements ticket CRUD with the ownership rule: a ticket is
// visible to its creator, Support Agents and Admins.
type TicketService interface {
	Create(ctx context.Context, userID string, in CreateTicketInput) (*domain.Ticket, error)
	ListOwn(ctx context.Context, userID string) ([]*domain.Ticket, error)
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	Get(ctx context.Context, userID string, role domain.Role, ticketID string) (*domain.Ticket, error)
	Update(ctx context.Context, userID string, role domain.Role, ticketID string, in UpdateTicketInput) (*domain.Ticket, error)
	AddResponse(ctx context.Context, userID string, role domain.Role, ticketID, message string) (*domain.Ticket, error)
	// Assign hands a ticket to a Support Agent and moves it to In Progress.
	Assign(ctx context.Context, adminID, ticketID, agentID string) (*domain.Ticket, error)
}
