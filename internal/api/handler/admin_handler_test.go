package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/deskware/helpdesk-system/internal/auth"
	"github.com/deskware/helpdesk-system/internal/core/domain"
)

type stubRoleService struct {
	pendingFn  func(ctx context.Context) ([]*domain.User, error)
	resolveFn  func(ctx context.Context, adminID, userID, action string) (*domain.User, string, error)
	listFn     func(ctx context.Context) ([]*domain.User, error)
	overrideFn func(ctx context.Context, adminID, userID, role string) (*domain.User, error)
}

func (s *stubRoleService) PendingRequests(ctx context.Context) ([]*domain.User, error) {
	return s.pendingFn(ctx)
}

func (s *stubRoleService) Resolve(ctx context.Context, adminID, userID, action string) (*domain.User, string, error) {
	return s.resolveFn(ctx, adminID, userID, action)
}

func (s *stubRoleService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubRoleService) OverrideRole(ctx context.Context, adminID, userID, role string) (*domain.User, error) {
	return s.overrideFn(ctx, adminID, userID, role)
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: "admin1", Role: domain.RoleAdmin, RoleStatus: domain.RoleStatusActive}
}

func TestAdminHandler_ListRoleRequests(t *testing.T) {
	stub := &stubRoleService{
		pendingFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{{ID: "u1", RoleStatus: domain.RoleStatusPending}}, nil
		},
	}
	h := NewAdminHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/role-requests", "")
	authenticate(c, adminClaims())

	if err := h.ListRoleRequests(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["roleStatus"] != "pending" {
		t.Fatalf("unexpected body: %+v", users)
	}
}

func TestAdminHandler_ResolveRoleRequest_Approve(t *testing.T) {
	stub := &stubRoleService{
		resolveFn: func(ctx context.Context, adminID, userID, action string) (*domain.User, string, error) {
			if adminID != "admin1" || userID != "u1" || action != "approve" {
				t.Fatalf("unexpected args: %s %s %s", adminID, userID, action)
			}
			return &domain.User{ID: "u1", Role: domain.RoleSupportAgent, RoleStatus: domain.RoleStatusActive},
				"Bob has been promoted to Support Agent", nil
		},
	}
	h := NewAdminHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/role-requests/u1", `{"action":"approve"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	authenticate(c, adminClaims())

	if err := h.ResolveRoleRequest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Bob has been promoted to Support Agent" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAdminHandler_ResolveRoleRequest_Errors(t *testing.T) {
	for name, serviceErr := range map[string]error{
		"unknown user": domain.ErrUserNotFound,
		"not pending":  domain.ErrNoPendingRequest,
		"bad action":   domain.ErrInvalidAction,
	} {
		stub := &stubRoleService{
			resolveFn: func(ctx context.Context, adminID, userID, action string) (*domain.User, string, error) {
				return nil, "", serviceErr
			},
		}
		h := NewAdminHandler(stub, nil)

		c, _ := newTestContext(t, http.MethodPut, "/api/admin/role-requests/u1", `{"action":"approve"}`)
		c.SetParamNames("id")
		c.SetParamValues("u1")
		authenticate(c, adminClaims())

		if err := h.ResolveRoleRequest(c); !errors.Is(err, serviceErr) {
			t.Fatalf("%s: expected %v, got %v", name, serviceErr, err)
		}
	}
}

func TestAdminHandler_OverrideUserRole(t *testing.T) {
	stub := &stubRoleService{
		overrideFn: func(ctx context.Context, adminID, userID, role string) (*domain.User, error) {
			if role != "Support Agent" {
				t.Fatalf("unexpected role %q", role)
			}
			return &domain.User{ID: "u1", Role: domain.RoleSupportAgent}, nil
		},
	}
	h := NewAdminHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/users/u1/role", `{"role":"Support Agent"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	authenticate(c, adminClaims())

	if err := h.OverrideUserRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
