package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The field
// is named "msg" for compatibility with existing clients.
type errorResponse struct {
	Msg string `json:"msg"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"msg": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Msg: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Error ordering matters:
	// ErrAdminCodeRequired wraps ErrInvalidCredentials, so it is checked first
	// to keep its specific message.
	switch {
	case errors.Is(err, domain.ErrAdminCodeRequired):
		return http.StatusBadRequest, "Admin access code is required"
	case errors.Is(err, domain.ErrInvalidAdminCode):
		return http.StatusBadRequest, "Invalid admin code"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid Credentials"
	case errors.Is(err, domain.ErrAgentJustification):
		return http.StatusBadRequest, "Agent justification is required (minimum 10 characters)"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already in use"
	case errors.Is(err, domain.ErrNoPendingRequest):
		return http.StatusBadRequest, "No pending role request for this user"
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, `Invalid action. Use "approve" or "reject"`
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrNotSupportAgent):
		return http.StatusBadRequest, "User is not a Support Agent"
	case errors.Is(err, domain.ErrSubjectTooLong):
		return http.StatusBadRequest, "Subject cannot be more than 100 characters"
	case errors.Is(err, domain.ErrInvalidTicketInput):
		return http.StatusBadRequest, "Please include all fields"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied: insufficient permissions"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound, "Ticket not found"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts, try again later"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
