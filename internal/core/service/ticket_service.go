package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/deskware/helpdesk-system/internal/core/domain"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// TicketService implements ticket CRUD, the response thread, and admin
// assignment. Role gates live in the route middleware; the ownership rule
// (creator OR agent/admin) is enforced here because it needs the record.
type TicketService struct {
	tickets ports.TicketRepository
	users   ports.UserRepository
	audit   ports.AuditSink
	logger  zerolog.Logger
}

func NewTicketService(tickets ports.TicketRepository, users ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *TicketService {
	return &TicketService{tickets: tickets, users: users, audit: audit, logger: logger}
}

func (s *TicketService) Create(ctx context.Context, userID string, in ports.CreateTicketInput) (*domain.Ticket, error) {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" || strings.TrimSpace(in.Description) == "" || in.Category == "" {
		return nil, domain.ErrInvalidTicketInput
	}
	if len(subject) > domain.MaxSubjectLen {
		return nil, domain.ErrSubjectTooLong
	}

	priority := domain.PriorityMedium
	if in.Priority != "" {
		priority = domain.TicketPriority(in.Priority)
		if !domain.ValidTicketPriority(priority) {
			return nil, domain.ErrInvalidTicketInput
		}
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		UserID:      userID,
		Subject:     subject,
		Description: in.Description,
		Category:    in.Category,
		Priority:    priority,
		Status:      domain.TicketOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ticket_id", created.ID).Str("user_id", userID).Msg("ticket created")
	return created, nil
}

func (s *TicketService) ListOwn(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	return s.tickets.ListByOwner(ctx, userID)
}

func (s *TicketService) ListAll(ctx context.Context) ([]*domain.Ticket, error) {
	return s.tickets.ListAll(ctx)
}

func (s *TicketService) Get(ctx context.Context, userID string, role domain.Role, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.AccessibleBy(userID, role) {
		return nil, domain.ErrForbidden
	}
	return ticket, nil
}

func (s *TicketService) Update(ctx context.Context, userID string, role domain.Role, ticketID string, in ports.UpdateTicketInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.AccessibleBy(userID, role) {
		return nil, domain.ErrForbidden
	}

	if in.Subject != nil {
		subject := strings.TrimSpace(*in.Subject)
		if subject == "" || len(subject) > domain.MaxSubjectLen {
			return nil, domain.ErrInvalidTicketInput
		}
		ticket.Subject = subject
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.Category != nil {
		ticket.Category = *in.Category
	}
	if in.Status != nil {
		status := domain.TicketStatus(*in.Status)
		if !domain.ValidTicketStatus(status) {
			return nil, domain.ErrInvalidTicketInput
		}
		ticket.Status = status
	}
	if in.Priority != nil {
		priority := domain.TicketPriority(*in.Priority)
		if !domain.ValidTicketPriority(priority) {
			return nil, domain.ErrInvalidTicketInput
		}
		ticket.Priority = priority
	}
	ticket.UpdatedAt = time.Now().UTC()

	return s.tickets.Update(ctx, ticket)
}

func (s *TicketService) AddResponse(ctx context.Context, userID string, role domain.Role, ticketID, message string) (*domain.Ticket, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrInvalidTicketInput
	}
	if !role.CanWorkTickets() {
		return nil, domain.ErrForbidden
	}

	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ticket.Responses = append(ticket.Responses, domain.TicketResponse{
		UserID:    userID,
		Message:   message,
		CreatedAt: now,
	})
	ticket.UpdatedAt = now

	return s.tickets.Update(ctx, ticket)
}

func (s *TicketService) Assign(ctx context.Context, adminID, ticketID, agentID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	agent, err := s.users.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.Role != domain.RoleSupportAgent {
		return nil, domain.ErrNotSupportAgent
	}

	ticket.AssignedAgent = agentID
	ticket.Status = domain.TicketInProgress
	ticket.UpdatedAt = time.Now().UTC()

	updated, err := s.tickets.Update(ctx, ticket)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("admin_id", adminID).
		Str("ticket_id", ticketID).
		Str("agent_id", agentID).
		Msg("ticket assigned")

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			Action:    domain.AuditTicketAssigned,
			ActorID:   adminID,
			SubjectID: ticketID,
			Detail:    agentID,
			At:        time.Now().UTC(),
		})
	}

	return updated, nil
}
