package handler

// --- Request / Response types ---

type registerRequest struct {
	Name               string `json:"name"               validate:"required"`
	Email              string `json:"email"              validate:"required,email"`
	Password           string `json:"password"           validate:"required,min=6"`
	RequestedRole      string `json:"requestedRole"`
	AgentJustification string `json:"agentJustification"`
	AdminCode          string `json:"adminCode"`
}

type registerResponse struct {
	Token      string `json:"token"`
	RoleStatus string `json:"roleStatus"`
	Message    string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// updateProfileRequest is a partial edit; absent fields stay untouched.
// Role fields are not accepted here — elevation goes through the role
// request workflow.
type updateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Bio         *string `json:"bio"`
	Avatar      *string `json:"avatar"`
}
