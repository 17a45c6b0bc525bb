package http

import (
	"net/http"
	"strings"

	"logistica/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is where the auth middleware stores the verified identity.
const claimsContextKey = "userClaims"

// BearerAuth returns middleware enforcing a valid bearer token on the route.
// A missing token yields 401, an invalid or expired one 403, mirroring the
// distinction the admin UI relies on to decide between "log in" and
// "session expired".
func BearerAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token requerido"})
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Token inválido"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the identity the auth middleware attached to the
// request. The second return value is false on unauthenticated routes.
func ClaimsFromContext(c echo.Context) (ports.TokenClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(ports.TokenClaims)
	return claims, ok
}
