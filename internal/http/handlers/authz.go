package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "techmart/internal/log"
)

// RequireAdmin guards the catalog-admin routes with a bearer token checked
// against a bcrypt hash. An empty hash disables the routes entirely.
func RequireAdmin(tokenHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenHash == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" {
			token = c.Get("X-Admin-Token")
		}
		if token == "" || bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) != nil {
			applog.Security(c, "admin.auth.fail", nil)
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.Next()
	}
}
