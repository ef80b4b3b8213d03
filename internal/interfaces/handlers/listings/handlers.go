package listings

import (
	"errors"

	listsvc "listing-wizard/internal/application/listings"
	"listing-wizard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *listsvc.Service
}

// GET /api/v1/listings/get-all-listings
func (h *Handlers) GetAllListings(c *fiber.Ctx) error {
	listings, err := h.Service.GetAllListings(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, "Listings fetched successfully", listings, fiber.Map{"count": len(listings)})
}

// GET /api/v1/listings/get-listing/:listing_id
func (h *Handlers) GetListingByID(c *fiber.Ctx) error {
	listingID, err := ParseListingID(c)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}
	listing, err := h.Service.GetListingByID(c.UserContext(), listingID)
	if err != nil {
		return ListingError(c, err)
	}
	return response.Success(c, "Listing fetched successfully", listing, nil)
}

// ParseListingID reads the :listing_id route parameter.
func ParseListingID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr := c.Params("listing_id")
	if idStr == "" {
		return uuid.Nil, listsvc.ErrListingIDMissing
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errors.New("Invalid listing_id format")
	}
	return id, nil
}

// ListingError maps listing lookup failures to responses.
func ListingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, listsvc.ErrListingIDMissing):
		return response.Error(c, err.Error(), 400, nil)
	case errors.Is(err, listsvc.ErrListingNotFound):
		return response.Error(c, err.Error(), 404, nil)
	default:
		return err
	}
}
