package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	healthsvc "listing-wizard/internal/application/health"
	"listing-wizard/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type twoSessions struct{}

func (twoSessions) Len() int { return 2 }

func setupHealthHandlers(t *testing.T) *Handlers {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &Handlers{Rdb: rdb, Options: healthsvc.Options{Sessions: twoSessions{}}}
}

func decode(t *testing.T, body io.Reader, v interface{}) {
	b, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestReset_RequiresKey(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/reset", middleware.RequireAdminKey("test-admin-key"), h.Reset)

	resp, err := app.Test(httptest.NewRequest("GET", "/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Unauthorized", out["error"].(map[string]interface{})["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/reset?key=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestReset_Success(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/reset", middleware.RequireAdminKey("test-admin-key"), h.Reset)

	ctx := context.Background()
	require.NoError(t, h.Rdb.Set(ctx, "health:global:req_total", "5", 0).Err())
	resp, err := app.Test(httptest.NewRequest("GET", "/reset?key=test-admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "Stats reset successfully", out["message"])

	_, err = h.Rdb.Get(ctx, "health:global:req_total").Result()
	assert.Error(t, err)
	_, err = h.Rdb.Get(ctx, "health:global:start_time").Result()
	assert.NoError(t, err)
}

func TestReset_WithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Get("/reset", (&Handlers{}).Reset)
	resp, err := app.Test(httptest.NewRequest("GET", "/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)
}

func TestJSON_ReturnsStructure(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/json", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "listing-wizard-api", out["service"])
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, float64(2), out["wizard"].(map[string]interface{})["activeSessions"])
	assert.Contains(t, out, "runtime")
	assert.Contains(t, out, "traffic")
	assert.Contains(t, out, "dependencies")
}

func TestErrors_ReturnsArray(t *testing.T) {
	h := setupHealthHandlers(t)
	app := fiber.New()
	app.Get("/health/errors", h.Errors)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	var arr []interface{}
	decode(t, resp.Body, &arr)
	assert.Empty(t, arr)

	h.Rdb.LPush(context.Background(), "health:global:error_log", `{"time":"2024-01-01T12:00:00Z","path":"/api","method":"GET","message":"test"}`)
	resp, err = app.Test(httptest.NewRequest("GET", "/health/errors", nil))
	require.NoError(t, err)
	var arr2 []map[string]interface{}
	decode(t, resp.Body, &arr2)
	require.Len(t, arr2, 1)
	assert.Equal(t, "test", arr2[0]["message"])
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", (&Handlers{}).Root)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	var out map[string]interface{}
	decode(t, resp.Body, &out)
	assert.Equal(t, "listing-wizard-api", out["service"])
}
