package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"listing-wizard/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound  = errors.New("Listing not found")
	ErrListingIDMissing = errors.New("listing_id is required")
)

// Service persists submitted wizard records and serves them back.
type Service struct {
	DB *gorm.DB
}

// Submit stores the record as a listing. It satisfies wizard.Submitter.
func (s *Service) Submit(ctx context.Context, record domain.ListingRecord) error {
	_, err := s.CreateFromRecord(ctx, record)
	return err
}

// CreateFromRecord writes the listing and its SUBMITTED event in one transaction.
func (s *Service) CreateFromRecord(ctx context.Context, record domain.ListingRecord) (*domain.Listing, error) {
	recordBytes, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("Failed to encode listing record: %w", err)
	}
	listing := &domain.Listing{
		Title:         record.Title,
		ApartmentType: record.ApartmentType,
		Country:       record.Country,
		City:          record.City,
		StreetAddress: record.StreetAddress,
		BasePrice:     record.BasePrice,
		Currency:      record.Currency,
		MaxGuests:     record.MaxGuests,
		CoverImageURL: record.CoverImage(),
		Images:        domain.StringList(append([]string{}, record.Images...)),
		Record:        datatypes.JSON(recordBytes),
		Status:        domain.ListingStatusSubmitted,
	}

	tx := s.DB.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := tx.Create(listing).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("Failed to create listing: %w", err)
	}
	eventDataBytes, _ := json.Marshal(map[string]interface{}{
		"title":      listing.Title,
		"base_price": listing.BasePrice,
		"currency":   listing.Currency,
		"images":     len(listing.Images),
		"source":     "wizard",
	})
	if err := tx.Create(&domain.ListingEvent{
		ListingID: listing.ListingID,
		EventType: domain.ListingEventSubmitted,
		EventData: datatypes.JSON(eventDataBytes),
	}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("Failed to create listing event: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("Failed to create listing: %w", err)
	}
	return listing, nil
}

func (s *Service) GetAllListings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := s.DB.WithContext(ctx).Order(`"createdAt" DESC`).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("Failed to fetch listings: %w", err)
	}
	return listings, nil
}

func (s *Service) GetListingByID(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error) {
	if listingID == uuid.Nil {
		return nil, ErrListingIDMissing
	}
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id = ?", listingID).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// LogSubmitter accepts every record and only logs it. It is used when no
// database is configured.
type LogSubmitter struct{}

func (LogSubmitter) Submit(_ context.Context, record domain.ListingRecord) error {
	log.Info().
		Str("title", record.Title).
		Str("city", record.City).
		Float64("base_price", record.BasePrice).
		Int("images", len(record.Images)).
		Msg("Listing submitted (not persisted)")
	return nil
}
