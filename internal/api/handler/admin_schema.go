package handler

import "github.com/deskware/helpdesk-system/internal/core/domain"

type resolveRoleRequestBody struct {
	Action string `json:"action" validate:"required"`
}

type resolveRoleRequestResponse struct {
	User    *domain.User `json:"user"`
	Message string       `json:"message"`
}

type overrideRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type assignTicketRequest struct {
	AssignedAgent string `json:"assignedAgent" validate:"required"`
}
