package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

func TestResolveError_DomainMappings(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrUserExists, http.StatusBadRequest, "User already exists"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "Email already in use"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid Credentials"},
		{domain.ErrAdminCodeRequired, http.StatusBadRequest, "Admin access code is required"},
		{domain.ErrInvalidAdminCode, http.StatusBadRequest, "Invalid admin code"},
		{domain.ErrAgentJustification, http.StatusBadRequest, "Agent justification is required (minimum 10 characters)"},
		{domain.ErrNoPendingRequest, http.StatusBadRequest, "No pending role request for this user"},
		{domain.ErrInvalidAction, http.StatusBadRequest, `Invalid action. Use "approve" or "reject"`},
		{domain.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
		{domain.ErrForbidden, http.StatusForbidden, "Access denied: insufficient permissions"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts, try again later"},
		{errors.New("database exploded"), http.StatusInternalServerError, "Server error"},
	}

	for _, tc := range cases {
		code, msg := resolveError(tc.err, log, c)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.code, tc.msg)
		}
	}
}

func TestResolveError_EchoErrorsPassThrough(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "Access denied: not authenticated"), zerolog.Nop(), c)
	if code != http.StatusUnauthorized || msg != "Access denied: not authenticated" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUserExists, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"msg\":\"User already exists\"}\n" {
		t.Fatalf("unexpected envelope: %q", body)
	}
}
