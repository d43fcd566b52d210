package handler

type createTicketRequest struct {
	Subject     string `json:"subject"     validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=Low Medium High Critical"`
}

type updateTicketRequest struct {
	Subject     *string `json:"subject"     validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"   validate:"omitempty,oneof=Open 'In Progress' Resolved Closed"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
}

type addResponseRequest struct {
	Message string `json:"message" validate:"required"`
}
