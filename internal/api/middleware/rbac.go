package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
)

// RequireRole gates a route to the allowed roles. A missing principal is
// always rejected as unauthenticated before any role comparison; a present
// principal with a role outside the set is forbidden.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := Principal(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}
