package listingevents

import (
	"context"
	"testing"

	"listing-wizard/internal/application/listings"
	"listing-wizard/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetListingEvents_OldestFirst(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Listing{}, &domain.ListingEvent{}))
	ls := &listings.Service{DB: db}
	svc := &Service{Listings: ls}
	ctx := context.Background()

	listing, err := ls.CreateFromRecord(ctx, domain.ListingRecord{})
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.ListingEvent{ListingID: listing.ListingID, EventType: "VIEWED", EventData: []byte(`{}`)}).Error)

	events, err := svc.GetListingEvents(ctx, listing.ListingID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ListingEventSubmitted, events[0].EventType)

	_, err = svc.GetListingEvents(ctx, uuid.New())
	assert.ErrorIs(t, err, listings.ErrListingNotFound)
}
