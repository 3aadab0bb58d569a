package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mateusfigmelo/msc-backend/pkg/jwtutil"
	"github.com/mateusfigmelo/msc-backend/pkg/logger"
	"github.com/mateusfigmelo/msc-backend/pkg/response"
)

const userIDKey = "user_id"

// AuthMiddleware validates the bearer token and stores the caller identity.
// Admin routes use this; an invalid or missing token rejects the request.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		claims, err := claimsFromHeader(c)
		if err != nil {
			log.Warn("Rejecting unauthenticated request", zap.Error(err))
			return response.Error(c, http.StatusUnauthorized, err.Error())
		}

		c.Set(userIDKey, claims.UserID)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)
		return next(c)
	}
}

// OptionalAuthMiddleware attaches the caller identity when a valid token is
// present and lets the request through either way. Public routes that stamp
// createdBy/updatedBy use this; a missing identity is recorded as null.
func OptionalAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := claimsFromHeader(c); err == nil {
			c.Set(userIDKey, claims.UserID)
			c.Set("email", claims.Email)
			c.Set("user_role", claims.Role)
		}
		return next(c)
	}
}

// Identity returns the authenticated caller's ID, or nil when the request was
// anonymous.
func Identity(c echo.Context) *string {
	if userID, ok := c.Get(userIDKey).(string); ok && userID != "" {
		return &userID
	}
	return nil
}

func claimsFromHeader(c echo.Context) (*jwtutil.UserClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, errors.New("invalid authorization format, expected Bearer token")
	}

	claims, err := jwtutil.ValidateToken(parts[1])
	if err != nil {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}
