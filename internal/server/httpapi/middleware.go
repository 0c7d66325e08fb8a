package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskdeck/internal/common"
	"taskdeck/internal/server/auth"
)

// userIDKey is the request-local key holding the verified user identity.
const userIDKey = "userID"

// authMiddleware gates every task route. It extracts the bearer token,
// verifies it, and stores the user id on the request before any handler
// runs; a request without a valid token never reaches a handler.
func (s *Server) authMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing credentials")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return unauthorized(c, "missing credentials")
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimSpace(parts[1]), s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return unauthorized(c, "token expired")
			}
			return unauthorized(c, "invalid token")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// userIDFromCtx returns the identity injected by authMiddleware.
func userIDFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(userIDKey).(string); ok {
		return v
	}
	return ""
}
