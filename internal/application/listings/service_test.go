package listings

import (
	"context"
	"encoding/json"
	"testing"

	"listing-wizard/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupListingsService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Listing{}, &domain.ListingEvent{}))
	return &Service{DB: db}
}

func submittedRecord() domain.ListingRecord {
	return domain.NewRecord(domain.NewFragment(domain.ListingRecord{
		Title: "Loft", ApartmentType: "studio", Country: "US", City: "NYC",
		StreetAddress: "1 Main", BasePrice: 120, Currency: "USD", MaxGuests: 2,
		Images: []string{"cover.jpg", "room.jpg"},
	}, domain.FieldTitle, domain.FieldApartmentType, domain.FieldCountry, domain.FieldCity,
		domain.FieldStreetAddress, domain.FieldBasePrice, domain.FieldCurrency,
		domain.FieldMaxGuests, domain.FieldImages))
}

func TestCreateFromRecord_WritesListingAndEvent(t *testing.T) {
	svc := setupListingsService(t)
	ctx := context.Background()

	listing, err := svc.CreateFromRecord(ctx, submittedRecord())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, listing.ListingID)
	assert.Equal(t, "cover.jpg", listing.CoverImageURL)

	got, err := svc.GetListingByID(ctx, listing.ListingID)
	require.NoError(t, err)
	assert.Equal(t, "Loft", got.Title)
	assert.Equal(t, domain.StringList{"cover.jpg", "room.jpg"}, got.Images)
	assert.Equal(t, domain.ListingStatusSubmitted, got.Status)

	var record domain.ListingRecord
	require.NoError(t, json.Unmarshal(got.Record, &record))
	assert.Equal(t, 2, record.MaxGuests)
	assert.False(t, record.Has(domain.FieldYearBuilt))

	var events []domain.ListingEvent
	require.NoError(t, svc.DB.Where("listing_id = ?", listing.ListingID).Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ListingEventSubmitted, events[0].EventType)
}

func TestSubmit_ImplementsSubmitter(t *testing.T) {
	svc := setupListingsService(t)
	ctx := context.Background()
	require.NoError(t, svc.Submit(ctx, submittedRecord()))
	require.NoError(t, svc.Submit(ctx, domain.ListingRecord{}))

	all, err := svc.GetAllListings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetListingByID_Errors(t *testing.T) {
	svc := setupListingsService(t)
	_, err := svc.GetListingByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrListingIDMissing)
	_, err = svc.GetListingByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestLogSubmitter(t *testing.T) {
	assert.NoError(t, LogSubmitter{}.Submit(context.Background(), submittedRecord()))
}
