package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:            "user1",
		DisplayName:   "Alice",
		Email:         "a@x.com",
		Role:          domain.RoleEndUser,
		RequestedRole: domain.RoleSupportAgent,
		RoleStatus:    domain.RoleStatusPending,
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	user := testUser()

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Mutating the stored record must not affect an already-issued token:
	// the claims are a snapshot taken at issuance.
	user.Role = domain.RoleAdmin
	user.RoleStatus = domain.RoleStatusActive

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user1" || claims.Email != "a@x.com" || claims.DisplayName != "Alice" {
		t.Fatalf("identity fields lost: %+v", claims)
	}
	if claims.Role != domain.RoleEndUser || claims.RoleStatus != domain.RoleStatusPending {
		t.Fatalf("claims must reflect the state at issuance, got role=%q status=%q", claims.Role, claims.RoleStatus)
	}
	if claims.RequestedRole != domain.RoleSupportAgent {
		t.Fatalf("requested role lost: %q", claims.RequestedRole)
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("secret", -time.Minute)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("other", time.Hour).Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	if _, err := NewIssuer("secret", time.Hour).Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
