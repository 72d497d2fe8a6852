package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// AuthRequired validates the bearer token and injects the caller identity
// into the echo context.
func AuthRequired(tokens TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header required (Bearer <token>)",
				})
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// callerIdentity extracts the authenticated caller injected by AuthRequired.
func callerIdentity(ctx echo.Context) (Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(Identity)
	return identity, ok
}
