package domain

import "time"

// TicketStatus is the workflow state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
	TicketClosed     TicketStatus = "Closed"
)

// ValidTicketStatus reports whether s is one of the known workflow states.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// TicketPriority is the urgency assigned to a ticket.
type TicketPriority string

const (
	PriorityLow      TicketPriority = "Low"
	PriorityMedium   TicketPriority = "Medium"
	PriorityHigh     TicketPriority = "High"
	PriorityCritical TicketPriority = "Critical"
)

// ValidTicketPriority reports whether p is one of the known priorities.
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// MaxSubjectLen caps the ticket subject length.
const MaxSubjectLen = 100

// TicketResponse is a single reply on a ticket's thread.
type TicketResponse struct {
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ticket is a support request filed by an end user.
type Ticket struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	AssignedAgent string           `json:"assignedAgent,omitempty"`
	Subject       string           `json:"subject"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Priority      TicketPriority   `json:"priority"`
	Status        TicketStatus     `json:"status"`
	Responses     []TicketResponse `json:"responses"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// AccessibleBy reports whether the given identity may read or update the
// ticket: the creator always can, everyone else needs a ticket-working role.
func (t *Ticket) AccessibleBy(userID string, role Role) bool {
	return t.UserID == userID || role.CanWorkTickets()
}
