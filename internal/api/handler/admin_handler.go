package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/api/metrics"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// AdminHandler exposes the admin workflow: the role request queue, user
// management and ticket assignment. Every route is gated to Admins.
type AdminHandler struct {
	roleService   ports.RoleService
	ticketService ports.TicketService
}

func NewAdminHandler(roleService ports.RoleService, ticketService ports.TicketService) *AdminHandler {
	return &AdminHandler{roleService: roleService, ticketService: ticketService}
}

// ListRoleRequests returns users with a pending elevation request.
//
// @Summary      List pending role requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /admin/role-requests [get]
func (h *AdminHandler) ListRoleRequests(c echo.Context) error {
	pending, err := h.roleService.PendingRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pending)
}

// ResolveRoleRequest approves or rejects one pending request.
//
// @Summary      Approve or reject a role request
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "User id"
// @Param        body  body      resolveRoleRequestBody  true  "approve or reject"
// @Success      200   {object}  resolveRoleRequestResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/role-requests/{id} [put]
func (h *AdminHandler) ResolveRoleRequest(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req resolveRoleRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, message, err := h.roleService.Resolve(c.Request().Context(), claims.UserID, c.Param("id"), req.Action)
	if err != nil {
		return err
	}

	metrics.RoleRequestsResolvedTotal.WithLabelValues(req.Action).Inc()

	return c.JSON(http.StatusOK, resolveRoleRequestResponse{User: user, Message: message})
}

// ListUsers returns every account, newest first.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.roleService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// OverrideUserRole sets a user's effective role directly.
//
// @Summary      Override a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "User id"
// @Param        body  body      overrideRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) OverrideUserRole(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req overrideRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.roleService.OverrideRole(c.Request().Context(), claims.UserID, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// AssignTicket hands a ticket to a Support Agent.
//
// @Summary      Assign a ticket to an agent
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Ticket id"
// @Param        body  body      assignTicketRequest  true  "Agent user id"
// @Success      200   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/tickets/{id}/assign [put]
func (h *AdminHandler) AssignTicket(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req assignTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.ticketService.Assign(c.Request().Context(), claims.UserID, c.Param("id"), req.AssignedAgent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}
