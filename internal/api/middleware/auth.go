package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-zoo/zoo-api/internal/api/metrics"
	"github.com/arcadia-zoo/zoo-api/internal/core/domain"
	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// TokenHeader is the header carrying the opaque API token.
const TokenHeader = "X-AUTH-TOKEN"

// principalKey is the echo context key under which the resolved principal
// is stored for the remainder of the request.
const principalKey = "principal"

// TokenAuth resolves the X-AUTH-TOKEN header into a principal.
//
// Requests without the header are not subject to token authentication: they
// continue anonymously and any role gate downstream decides what anonymous
// may do. When the header is present, resolution either attaches exactly
// one principal to the request context or short-circuits with a 401 whose
// body is {"message": <reason>}. Credential problems never produce any
// other status.
func TokenAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			values, ok := c.Request().Header[http.CanonicalHeaderKey(TokenHeader)]
			if !ok || len(values) == 0 {
				return next(c)
			}

			principal, err := auth.ResolveToken(c.Request().Context(), values[0])
			if err != nil {
				metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": failureReason(err),
				})
			}

			metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// failureReason maps resolution errors to the reason texts the front
// office matches on.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "No API token provided"
	default:
		return "Invalid API token"
	}
}

// Principal returns the principal resolved for this request, if any.
// Handlers receive the anonymous case as ok == false.
func Principal(c echo.Context) (*domain.User, bool) {
	principal, ok := c.Get(principalKey).(*domain.User)
	return principal, ok && principal != nil
}
