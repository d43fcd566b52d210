package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/api/middleware"
	"github.com/deskware/helpdesk-system/internal/auth"
)

// ctxClaims extracts the claim snapshot injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// routing mistake and fails closed.
func ctxClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(middleware.CtxClaims).(*auth.Claims)
	if !ok || claims.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access denied: not authenticated")
	}
	return claims, nil
}
