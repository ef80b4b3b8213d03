package router

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"listing-wizard/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApp_WithoutStores(t *testing.T) {
	app, db, rdb, err := CreateApp(&config.Config{SubmitDelay: time.Millisecond, SessionTTL: time.Hour})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Nil(t, rdb)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/wizard/welcome", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/wizard/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	var created struct {
		Data struct {
			SessionID string `json:"sessionId"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/wizard/sessions/"+created.Data.SessionID+"/draft", nil))
	require.NoError(t, err)
	assert.Equal(t, 501, resp.StatusCode, "drafts need Redis")

	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/uploads/listing-photo", nil))
	require.NoError(t, err)
	assert.Equal(t, 501, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/listings/get-all-listings", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/reset?key=", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	assert.NotNil(t, Handler(app))
}

func TestCreateApp_WithRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	app, _, rdb, err := CreateApp(&config.Config{RedisURL: "redis://" + mr.Addr(), SessionTTL: time.Hour})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer rdb.Close()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/wizard/welcome", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	total, err := mr.Get("health:global:req_total")
	require.NoError(t, err)
	assert.Equal(t, "1", total)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "connected", health["dependencies"].(map[string]interface{})["redis"].(map[string]interface{})["status"])
}
