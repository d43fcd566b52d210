package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/auth"
	"github.com/deskware/helpdesk-system/internal/core/domain"
)

func issueFor(t *testing.T, issuer *auth.Issuer, role domain.Role) string {
	t.Helper()
	token, err := issuer.Issue(&domain.User{
		ID:            "user1",
		DisplayName:   "Alice",
		Email:         "a@x.com",
		Role:          role,
		RequestedRole: role,
		RoleStatus:    domain.RoleStatusActive,
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := auth.NewIssuer("secret", time.Hour)
	token := issueFor(t, issuer, domain.RoleSupportAgent)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(issuer)(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "user1" {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxRole) != domain.RoleSupportAgent {
			t.Fatalf("role not set: %v", c.Get(CtxRole))
		}
		claims, ok := c.Get(CtxClaims).(*auth.Claims)
		if !ok || claims.Email != "a@x.com" {
			t.Fatalf("claims not set: %v", c.Get(CtxClaims))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_Rejections(t *testing.T) {
	e := echo.New()
	issuer := auth.NewIssuer("secret", time.Hour)

	expired := auth.NewIssuer("secret", -time.Minute)
	badSecret := auth.NewIssuer("other", time.Hour)

	cases := map[string]func(*http.Request){
		"missing header": func(r *http.Request) {},
		"not bearer": func(r *http.Request) {
			r.Header.Set("Authorization", "Basic abc")
		},
		"garbage token": func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-token")
		},
		"expired token": func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+issueFor(t, expired, domain.RoleEndUser))
		},
		"wrong signature": func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+issueFor(t, badSecret, domain.RoleEndUser))
		},
	}

	for name, setup := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		setup(req)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := Auth(issuer)(func(c echo.Context) error {
			t.Fatalf("%s: next handler must not run", name)
			return nil
		})(c)

		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", name, err)
		}
		// The caller must not be able to tell the failure modes apart.
		if he.Message != "Access denied: not authenticated" {
			t.Fatalf("%s: unexpected message %v", name, he.Message)
		}
	}
}
