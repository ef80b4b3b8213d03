package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// errorLogSize bounds the health:global:error_log list.
const errorLogSize = 50

// ErrorHandler returns the global error handler. It answers with the standard
// error format and, when rdb is set, records 5xx failures for /health/errors.
func ErrorHandler(rdb *redis.Client) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("trace_id", GetTraceID(c)).Str("path", c.Path()).Msg("unhandled error")
			if rdb != nil {
				recordError(c.UserContext(), rdb, c, err)
			}
		}
		return response.Error(c, message, code, nil)
	}
}

func recordError(ctx context.Context, rdb *redis.Client, c *fiber.Ctx, err error) {
	entry, _ := json.Marshal(map[string]interface{}{
		"time":     time.Now().UTC(),
		"method":   c.Method(),
		"path":     c.OriginalURL(),
		"message":  err.Error(),
		"trace_id": GetTraceID(c),
	})
	pipe := rdb.TxPipeline()
	pipe.LPush(ctx, KeyErrorLog, entry)
	pipe.LTrim(ctx, KeyErrorLog, 0, errorLogSize-1)
	if _, perr := pipe.Exec(ctx); perr != nil {
		log.Warn().Err(perr).Msg("health: failed to record error")
	}
}
