package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"auth-api/pkg/msg"
	"auth-api/pkg/token"
)

const (
	// ContextUserID is the echo context key holding the authenticated user id
	ContextUserID = "user_id"
	// ContextUsername is the echo context key holding the authenticated username
	ContextUsername = "username"
)

// RequireAuth returns a middleware that validates the Bearer access token and
// stores the authenticated identity in the request context.
func RequireAuth(tokenManager *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.missing-token")})
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.missing-token")})
			}

			claims, err := tokenManager.ValidateToken(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.invalid-token")})
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUsername, claims.Username)
			return next(c)
		}
	}
}
