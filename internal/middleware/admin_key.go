package middleware

import (
	"crypto/subtle"

	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const adminKeyHeader = "X-Admin-Key"

// RequireAdminKey guards operator routes. The key comes from the "key" query
// parameter or the X-Admin-Key header. An empty configured key locks the route.
func RequireAdminKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		given := c.Query("key")
		if given == "" {
			given = c.Get(adminKeyHeader)
		}
		if key == "" || given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			return response.Forbidden(c, "Unauthorized")
		}
		return c.Next()
	}
}
