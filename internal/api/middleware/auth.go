package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/auth"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxClaims = "claims"
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth validates the bearer token and injects the claim snapshot into the
// request context. Missing, malformed, expired and badly signed tokens are
// indistinguishable to the caller: all yield a generic 401.
func Auth(issuer *auth.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied: not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied: not authenticated")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied: not authenticated")
			}

			c.Set(CtxClaims, claims)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
