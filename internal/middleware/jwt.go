package middleware

import (
	"context"
	"strings"

	"talenthub/internal/common"
	"talenthub/internal/services"

	"github.com/labstack/echo/v4"
)

// JWTMiddleware validates the bearer token on protected routes and injects the
// authenticated user's id into the request context. It never mutates the
// credential; invalid, expired and absent tokens all stop at 401.
func JWTMiddleware(authService services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return common.SendUnauthorizedError(c, "Authorization token is required")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return common.SendUnauthorizedError(c, "Authorization header format must be Bearer {token}")
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				return common.SendUnauthorizedError(c, "Invalid or expired token")
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
