package listingevents

import (
	lesvc "listing-wizard/internal/application/listingevents"
	listhandler "listing-wizard/internal/interfaces/handlers/listings"
	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *lesvc.Service
}

// GET /api/v1/listing-events/get-listing-events/:listing_id
func (h *Handlers) GetListingEvents(c *fiber.Ctx) error {
	listingID, err := listhandler.ParseListingID(c)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}
	events, err := h.Service.GetListingEvents(c.UserContext(), listingID)
	if err != nil {
		return listhandler.ListingError(c, err)
	}
	return response.Success(c, "Listing events fetched successfully", events, nil)
}
