package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rewear/exchange/internal/auth"
	"github.com/rewear/exchange/internal/repository"
)

const (
	LocalUserID  = "userID"
	LocalIsAdmin = "isAdmin"
)

// AuthRequired rejects requests without a valid bearer token and stores
// the caller identity in fiber locals for downstream handlers.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalIsAdmin, claims.IsAdmin)
		return c.Next()
	}
}

// AdminOnly re-checks the admin flag against the database so a revoked
// admin cannot keep using an old token.
func AdminOnly(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(LocalUserID).(int64)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authentication")
		}

		user, err := userRepo.GetByID(userID)
		if err != nil || !user.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}

		return c.Next()
	}
}

// UserID returns the authenticated caller id set by AuthRequired.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}
