package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/api/metrics"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// TicketHandler handles ticket CRUD and the response thread.
type TicketHandler struct {
	ticketService ports.TicketService
}

func NewTicketHandler(ticketService ports.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// List returns the caller's own tickets.
//
// @Summary      List own tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Ticket
// @Failure      401  {object}  errorResponse
// @Router       /tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	tickets, err := h.ticketService.ListOwn(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// ListAll returns every ticket. Route is gated to Support Agents and Admins.
//
// @Summary      List all tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Ticket
// @Failure      403  {object}  errorResponse
// @Router       /tickets/all [get]
func (h *TicketHandler) ListAll(c echo.Context) error {
	tickets, err := h.ticketService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

// Create files a new ticket owned by the caller.
//
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Router       /tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.ticketService.Create(c.Request().Context(), claims.UserID, ports.CreateTicketInput{
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}

	metrics.TicketsCreatedTotal.WithLabelValues(string(ticket.Priority)).Inc()
	return c.JSON(http.StatusCreated, ticket)
}

// Get returns a single ticket, subject to the ownership rule.
//
// @Summary      Get a ticket
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {object}  domain.Ticket
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tickets/{id} [get]
func (h *TicketHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	ticket, err := h.ticketService.Get(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

// Update applies a partial edit, subject to the ownership rule.
//
// @Summary      Update a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Ticket id"
// @Param        body  body      updateTicketRequest  true  "Fields to update"
// @Success      200   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tickets/{id} [put]
func (h *TicketHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.ticketService.Update(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"), ports.UpdateTicketInput{
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

// AddResponse appends a reply to the ticket thread. Route is gated to Support
// Agents and Admins.
//
// @Summary      Add a response to a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Ticket id"
// @Param        body  body      addResponseRequest  true  "Response message"
// @Success      200   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tickets/{id}/responses [post]
func (h *TicketHandler) AddResponse(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req addResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.ticketService.AddResponse(c.Request().Context(), claims.UserID, claims.Role, c.Param("id"), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}
