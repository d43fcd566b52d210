package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/api/metrics"
	"github.com/deskware/helpdesk-system/internal/core/domain"
	"github.com/deskware/helpdesk-system/internal/core/ports"
)

// AuthHandler handles registration, login and profile self-service.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account with an optional role request.
//
// @Summary      Register a new user
// @Description  First-ever registrant becomes Admin. Requesting Admin needs a
// @Description  valid admin code; requesting Support Agent needs a
// @Description  justification and starts pending.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		RequestedRole:      req.RequestedRole,
		AgentJustification: req.AgentJustification,
		AdminCode:          req.AdminCode,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(result.User)).Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Token:      result.Token,
		RoleStatus: string(result.RoleStatus),
		Message:    result.Message,
	})
}

func registrationOutcome(u *domain.User) string {
	switch {
	case u.RoleStatus == domain.RoleStatusPending:
		return "agent_pending"
	case u.Role == domain.RoleAdmin && u.RequestedRole != domain.RoleAdmin:
		return "admin_bootstrap"
	case u.Role == domain.RoleAdmin:
		return "admin"
	default:
		return "end_user"
	}
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrTooManyAttempts) {
		return "rate_limited"
	}
	return "failure"
}

// Profile returns the caller's own record.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial edit of the caller's non-role fields.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), claims.UserID, ports.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
