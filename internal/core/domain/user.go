package domain

import (
	"strings"
	"time"
)

// Role is the effective access level of a user. Authorization decisions read
// this field and nothing else.
type Role string

const (
	RoleEndUser      Role = "End User"
	RoleSupportAgent Role = "Support Agent"
	RoleAdmin        Role = "Admin"
)

// ParseRole maps a wire string to a Role. Unrecognised values report ok=false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEndUser, RoleSupportAgent, RoleAdmin:
		return Role(s), true
	}
	return RoleEndUser, false
}

// CanWorkTickets reports whether the role may view and mutate tickets it does
// not own, and add responses.
func (r Role) CanWorkTickets() bool {
	return r == RoleSupportAgent || r == RoleAdmin
}

// RoleStatus is the lifecycle state of a requested role elevation.
type RoleStatus string

const (
	RoleStatusActive   RoleStatus = "active"
	RoleStatusPending  RoleStatus = "pending"
	RoleStatusRejected RoleStatus = "rejected"
)

// MinJustificationLen is the minimum trimmed length of an agent justification.
const MinJustificationLen = 10

// User is the persisted account record.
type User struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"displayName"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	Role               Role       `json:"role"`
	RequestedRole      Role       `json:"requestedRole"`
	RoleStatus         RoleStatus `json:"roleStatus"`
	AgentJustification string     `json:"agentJustification,omitempty"`
	RoleRequestedAt    *time.Time `json:"roleRequestedAt,omitempty"`
	RoleApprovedBy     string     `json:"roleApprovedBy,omitempty"`
	RoleApprovedAt     *time.Time `json:"roleApprovedAt,omitempty"`
	Bio                string     `json:"bio,omitempty"`
	Avatar             string     `json:"avatar,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// SignupRequest carries the role-relevant fields of a registration.
type SignupRequest struct {
	RequestedRole      Role
	AgentJustification string
	AdminCode          string
}

// RoleDecision is the outcome of the signup role state machine: the effective
// role the account starts with and the lifecycle state of the request.
type RoleDecision struct {
	Role          Role
	RequestedRole Role
	Status        RoleStatus
	RequestedAt   *time.Time
	Justification string
}

// DecideSignupRole computes the initial role tuple for a new account. Rules
// are ordered and the first match wins:
//
//  1. an empty store makes the registrant the bootstrap Admin
//  2. an Admin request needs a configured admin code
//  3. a Support Agent request needs a justification and starts pending,
//     keeping End User access until approved
//  4. everything else is an active End User
//
// The function is pure; persistence is the caller's concern.
func DecideSignupRole(req SignupRequest, existingUsers int64, validAdminCodes []string, now time.Time) (RoleDecision, error) {
	// The justification is kept whatever the outcome, so the record shows
	// what the registrant submitted even when no approval is needed.
	decision := RoleDecision{
		Role:          RoleEndUser,
		RequestedRole: req.RequestedRole,
		Status:        RoleStatusActive,
		Justification: req.AgentJustification,
	}

	if existingUsers == 0 {
		decision.Role = RoleAdmin
		return decision, nil
	}

	switch req.RequestedRole {
	case RoleAdmin:
		if req.AdminCode == "" {
			return RoleDecision{}, ErrAdminCodeRequired
		}
		if !codeMatches(req.AdminCode, validAdminCodes) {
			return RoleDecision{}, ErrInvalidAdminCode
		}
		decision.Role = RoleAdmin

	case RoleSupportAgent:
		if len(strings.TrimSpace(req.AgentJustification)) < MinJustificationLen {
			return RoleDecision{}, ErrAgentJustification
		}
		decision.Status = RoleStatusPending
		decision.RequestedAt = &now
	}

	return decision, nil
}

func codeMatches(code string, valid []string) bool {
	for _, v := range valid {
		if v != "" && v == code {
			return true
		}
	}
	return false
}

// ApproveRoleRequest grants the requested role. Only a pending request can be
// approved; a second approval of the same request fails without side effects.
func (u *User) ApproveRoleRequest(adminID string, now time.Time) error {
	if u.RoleStatus != RoleStatusPending {
		return ErrNoPendingRequest
	}
	u.Role = u.RequestedRole
	u.RoleStatus = RoleStatusActive
	u.RoleApprovedBy = adminID
	at := now
	u.RoleApprovedAt = &at
	return nil
}

// RejectRoleRequest closes a pending request. The effective role is left
// untouched (a pending user is always an End User) and the requested role is
// reset so no elevated request dangles.
func (u *User) RejectRoleRequest() error {
	if u.RoleStatus != RoleStatusPending {
		return ErrNoPendingRequest
	}
	u.RoleStatus = RoleStatusRejected
	u.RequestedRole = RoleEndUser
	return nil
}
