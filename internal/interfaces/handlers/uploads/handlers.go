package uploads

import (
	"errors"

	uploadsvc "listing-wizard/internal/application/uploads"
	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers bundles upload handlers with the service. Service is nil when
// storage is not configured.
type Handlers struct {
	Service *uploadsvc.Service
}

type uploadRequest struct {
	Category string `json:"category"`
}

// ListingPhoto POST /api/v1/uploads/listing-photo
func (h *Handlers) ListingPhoto(c *fiber.Ctx) error {
	if h.Service == nil {
		return response.Error(c, "Photo storage is not configured", fiber.StatusNotImplemented, nil)
	}
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil || req.Category == "" {
		return response.Error(c, "category is required", 400, nil)
	}

	res, err := h.Service.GetSignedUploadURL(c.Context(), req.Category)
	if err != nil {
		if errors.Is(err, uploadsvc.ErrMissingCategory) {
			return response.Error(c, err.Error(), 400, nil)
		}
		log.Error().Err(err).Str("bucket", h.Service.Bucket).Msg("upload: failed to generate signed URL")
		return response.Error(c, "Failed to generate upload URL", 500, nil)
	}
	return response.Success(c, "Upload URL generated", res, nil)
}
