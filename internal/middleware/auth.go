// Package middleware provides authentication and request logging middleware.
package middleware

import (
	"strings"

	"healthforum/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// UserIDLocal is the fiber.Ctx local under which the authenticated user id is stored.
const UserIDLocal = "userID"

// AuthRequired enforces authentication for protected routes. On success the
// authenticated user's id is stored in c.Locals(UserIDLocal).
func AuthRequired(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(UserIDLocal, claims.Subject)
		return c.Next()
	}
}

// UserID returns the authenticated user id placed by AuthRequired, or "".
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDLocal).(string); ok {
		return v
	}
	return ""
}
