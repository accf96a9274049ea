// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"dhansaathi/internal/delivery/http/response"
	"dhansaathi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which Authenticate stores
// the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for access token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. Every rejection
// returns the same generic message so callers cannot probe why a token failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		userID, ok := m.tokenSvc.Verify(tokenString)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
