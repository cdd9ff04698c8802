package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opentalent/recruitment-platform/internal/core/domain"
	"github.com/opentalent/recruitment-platform/internal/core/ports"
	"github.com/opentalent/recruitment-platform/internal/core/session"
)

// principalKey is the context key the resolver stores the authenticated
// user under.
const principalKey = "principal"

// ResolvePrincipal is the blanket optional-auth middleware. It attempts to
// verify the session token and resolve the principal; on any failure the
// request simply proceeds anonymously. A request is authenticated iff the
// token is present, valid, unexpired, and resolves to a user that still
// exists and is not soft-deleted — the repository lookup enforces the last
// two.
func ResolvePrincipal(sessions *session.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := session.FromRequest(c)
			if raw == "" {
				return next(c)
			}
			claims, err := sessions.Verify(raw)
			if err != nil {
				return next(c)
			}
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				// Deleted or vanished principal: the token stays
				// cryptographically valid but no longer authenticates.
				return next(c)
			}
			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// RequireAuth rejects requests that ResolvePrincipal left anonymous.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Principal(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// Principal returns the authenticated user attached to the request, or nil
// for anonymous requests.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}

// SetPrincipal attaches a user to the request context. Exposed for handler
// tests; production requests go through ResolvePrincipal.
func SetPrincipal(c echo.Context, user *domain.User) {
	c.Set(principalKey, user)
}
