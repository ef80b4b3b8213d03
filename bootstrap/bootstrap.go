package bootstrap

import (
	"listing-wizard/internal/config"
	"listing-wizard/internal/interfaces/router"
	"listing-wizard/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// New creates the Fiber app for serverless hosts (the api handler imports this package, not internal).
func New() (*fiber.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.Env)
	app, _, _, err := router.CreateApp(cfg)
	return app, err
}
