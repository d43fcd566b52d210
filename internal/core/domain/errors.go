package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrEmailTaken   = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers every login mismatch. The same error is
	// returned for an unknown email and a wrong password so responses cannot
	// be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminCodeRequired wraps ErrInvalidCredentials: a missing admin code
	// is a credential failure, but the registration flow reports it with its
	// own message.
	ErrAdminCodeRequired  = fmt.Errorf("%w: admin access code is required", ErrInvalidCredentials)
	ErrInvalidAdminCode   = errors.New("invalid admin code")
	ErrAgentJustification = errors.New("agent justification is required (minimum 10 characters)")

	ErrForbidden        = errors.New("access forbidden")
	ErrNoPendingRequest = errors.New("no pending role request for this user")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidAction    = errors.New(`invalid action, use "approve" or "reject"`)

	ErrTicketNotFound     = errors.New("ticket not found")
	ErrNotSupportAgent    = errors.New("user is not a support agent")
	ErrInvalidTicketInput = errors.New("invalid ticket input")
	ErrSubjectTooLong     = errors.New("subject cannot be more than 100 characters")

	ErrTooManyAttempts = errors.New("too many login attempts")
)
