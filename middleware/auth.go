package middleware

import (
	"strings"

	"hair-salon/auth"
	"hair-salon/types"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates a route behind a valid admin session token.
// Verified claims are attached to the context under "admin".
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{Error: "未認證"})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{Error: "未認證"})
		}

		claims, err := auth.ParseAdminToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{Error: "未認證"})
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}
