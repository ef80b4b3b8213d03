package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	uploadsvc "listing-wizard/internal/application/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	lastBucket string
	lastPath   string
	err        error
}

func (f *fakeClient) CreateSignedUploadURL(ctx context.Context, bucket, path string) (string, error) {
	f.lastBucket = bucket
	f.lastPath = path
	if f.err != nil {
		return "", f.err
	}
	return "https://example.com/upload", nil
}

func setupUploadTest(t *testing.T) (*fiber.App, *fakeClient) {
	client := &fakeClient{}
	h := &Handlers{Service: &uploadsvc.Service{
		Client:      client,
		SupabaseURL: "https://example.supabase.co",
		Bucket:      "listing-photos",
	}}
	app := fiber.New()
	app.Post("/api/v1/uploads/listing-photo", h.ListingPhoto)
	return app, client
}

func postPhoto(t *testing.T, app *fiber.App, body map[string]string) (int, map[string]interface{}) {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/uploads/listing-photo", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestListingPhoto_MissingCategory(t *testing.T) {
	app, _ := setupUploadTest(t)
	status, _ := postPhoto(t, app, map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListingPhoto_Success(t *testing.T) {
	app, client := setupUploadTest(t)
	status, result := postPhoto(t, app, map[string]string{"category": "bedrooms"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "listing-photos", client.lastBucket)
	assert.True(t, strings.HasPrefix(client.lastPath, "listings/bedrooms/"))

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "https://example.com/upload", data["uploadUrl"])
	assert.Contains(t, data["publicUrl"], "https://example.supabase.co/storage/v1/object/public/listing-photos/listings/bedrooms/")
}

func TestListingPhoto_StorageFailure(t *testing.T) {
	app, client := setupUploadTest(t)
	client.err = errors.New("boom")
	status, _ := postPhoto(t, app, map[string]string{"category": "cover"})
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestListingPhoto_NotConfigured(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/uploads/listing-photo", (&Handlers{}).ListingPhoto)
	status, _ := postPhoto(t, app, map[string]string{"category": "cover"})
	assert.Equal(t, fiber.StatusNotImplemented, status)
}
