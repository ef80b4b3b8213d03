package health

import (
	"time"

	healthsvc "listing-wizard/internal/application/health"
	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const serviceName = "listing-wizard-api"

// Handlers holds dependencies for health endpoints. Rdb and DB are nil when
// the store is not configured.
type Handlers struct {
	Rdb     *redis.Client
	DB      healthsvc.DBPinger
	Options healthsvc.Options
}

// Root GET / returns a short liveness summary.
func (h *Handlers) Root(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(c.UserContext(), h.Rdb, h.DB, healthsvc.Options{Sessions: h.Options.Sessions})
	return c.JSON(fiber.Map{
		"service": serviceName,
		"status":  result.Status,
		"health":  "/health/json",
	})
}

// Reset clears health stats in Redis. Guarded by middleware.RequireAdminKey.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	if h.Rdb == nil {
		return response.Error(c, "Redis is not configured", fiber.StatusNotImplemented, nil)
	}
	if err := healthsvc.ResetStats(c.UserContext(), h.Rdb, time.Now()); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Stats reset successfully", fiber.Map{"success": true}, nil)
}

// JSON returns health data as JSON (service + status, runtime, traffic, wizard, dependencies).
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(c.UserContext(), h.Rdb, h.DB, h.Options)
	return c.JSON(fiber.Map{
		"service":      serviceName,
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"wizard":       result.Wizard,
		"dependencies": result.Dependencies,
	})
}

// Errors returns the last 50 error log entries from Redis.
func (h *Handlers) Errors(c *fiber.Ctx) error {
	if h.Rdb == nil {
		return c.JSON([]interface{}{})
	}
	entries, err := healthsvc.RecentErrors(c.UserContext(), h.Rdb, 50)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON([]interface{}{})
	}
	return c.JSON(entries)
}
