package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route on one role. It must be registered after
// TokenAuth so the principal has had a chance to be resolved.
//
// Anonymous requests get 401 (authentication is what is missing);
// authenticated requests without the role get 403. Either way the handler
// body never runs.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := Principal(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Missing credentials"})
			}
			if !principal.HasRole(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Access denied"})
			}
			return next(c)
		}
	}
}

// RequireAuth gates a route on being authenticated at all, with no role
// requirement.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Principal(c); !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Missing credentials"})
			}
			return next(c)
		}
	}
}
