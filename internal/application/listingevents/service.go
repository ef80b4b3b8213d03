package listingevents

import (
	"context"

	"listing-wizard/internal/application/listings"
	"listing-wizard/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	Listings *listings.Service
}

// GetListingEvents returns a listing's audit trail, oldest first.
func (s *Service) GetListingEvents(ctx context.Context, listingID uuid.UUID) ([]domain.ListingEvent, error) {
	if _, err := s.Listings.GetListingByID(ctx, listingID); err != nil {
		return nil, err
	}
	var events []domain.ListingEvent
	if err := s.Listings.DB.WithContext(ctx).Where("listing_id = ?", listingID).Order(`"createdAt" ASC`).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
