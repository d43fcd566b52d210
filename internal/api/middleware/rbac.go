package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// RequireRoles permits the request only when the authenticated effective role
// is in the allowed set. The decision reads the role claim and nothing else.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied: insufficient permissions")
			}
			return next(c)
		}
	}
}
