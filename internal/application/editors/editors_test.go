package editors

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects reports the way a controller would.
type recorder struct {
	record  domain.ListingRecord
	reports int
}

func (r *recorder) report(f domain.Fragment) {
	r.reports++
	r.record.Merge(f)
}

type fakeMedia struct {
	url string
	err error
}

func (f fakeMedia) UploadURL(context.Context, string) (string, error) {
	return f.url, f.err
}

func raw(t *testing.T, v any) json.RawMessage {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func idx(i int) *int { return &i }

func mount(t *testing.T, step wizard.StepID, rec *recorder, deps Deps) Editor {
	e, err := Mount(step, rec.record, rec.report, deps)
	require.NoError(t, err)
	return e
}

func TestMount_ReportsOnceWithDefaults(t *testing.T) {
	rec := &recorder{}
	mount(t, wizard.StepCapacity, rec, Deps{})

	assert.Equal(t, 1, rec.reports)
	assert.Equal(t, 1, rec.record.MaxGuests)
	assert.Equal(t, []domain.Bed{{Type: "queen", Count: 1}}, rec.record.Beds)
	assert.True(t, rec.record.Has(domain.FieldPetNotes))
	assert.False(t, rec.record.Has(domain.FieldTitle))
}

func TestMount_EveryStep(t *testing.T) {
	owned := map[string]wizard.StepID{}
	for _, s := range wizard.DefaultSteps {
		rec := &recorder{}
		e := mount(t, s.ID, rec, Deps{})
		assert.Equal(t, s.ID, e.Step())
		for _, key := range e.Fragment().Keys {
			prev, dup := owned[key]
			assert.False(t, dup, "%s owned by %s and %s", key, prev, s.ID)
			owned[key] = s.ID
		}
	}
	assert.Len(t, owned, len(domain.RecordFields()))

	_, err := Mount("nowhere", domain.ListingRecord{}, nil, Deps{})
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestMount_SeedsFromRecordAndDefaults(t *testing.T) {
	zero := 0
	rec := &recorder{record: domain.NewRecord(domain.NewFragment(domain.ListingRecord{
		Bedrooms:    2,
		TotalSize:   &zero,
		FloorNumber: idx(4),
	}, domain.FieldBedrooms, domain.FieldTotalSize, domain.FieldFloorNumber))}
	mount(t, wizard.StepLayout, rec, Deps{})

	assert.Equal(t, 2, rec.record.Bedrooms)
	assert.Nil(t, rec.record.TotalSize)
	require.NotNil(t, rec.record.FloorNumber)
	assert.Equal(t, 4, *rec.record.FloorNumber)
	assert.Equal(t, domain.SizeUnitSqft, rec.record.SizeUnit)

	mount(t, wizard.StepPricing, rec, Deps{})
	assert.Equal(t, "USD", rec.record.Currency)
	assert.Equal(t, []string{}, rec.record.HouseRules)
}

func TestBasics_SetFields(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepBasics, rec, Deps{})
	ctx := context.Background()

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldTitle, Value: raw(t, "Sunny Loft")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldYearBuilt, Value: raw(t, "1999")}))
	assert.Equal(t, "Sunny Loft", rec.record.Title)
	require.NotNil(t, rec.record.YearBuilt)
	assert.Equal(t, 1999, *rec.record.YearBuilt)

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldYearBuilt, Value: raw(t, "")}))
	assert.Nil(t, rec.record.YearBuilt)

	err := e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldCity, Value: raw(t, "NYC")})
	assert.ErrorIs(t, err, ErrUnsupportedOp)
	err = e.Apply(ctx, Op{Op: "explode"})
	assert.ErrorIs(t, err, ErrUnsupportedOp)
	err = e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldTitle, Value: raw(t, 12)})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLocation_Attractions(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepLocation, rec, Deps{})
	ctx := context.Background()

	require.NoError(t, e.Apply(ctx, Op{Op: OpAdd, Field: domain.FieldNearbyAttractions, Value: raw(t, " Central Park ")}))
	err := e.Apply(ctx, Op{Op: OpAdd, Field: domain.FieldNearbyAttractions, Value: raw(t, "Central Park")})
	assert.ErrorIs(t, err, ErrDuplicateTag)
	assert.Equal(t, []string{"Central Park"}, rec.record.NearbyAttractions)

	loc := e.(*Location)
	require.NoError(t, loc.AddAttraction("MoMA"))
	loc.RemoveAttraction("Central Park")
	assert.Equal(t, []string{"MoMA"}, rec.record.NearbyAttractions)
}

func TestLayout_CountsAndFlags(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepLayout, rec, Deps{})
	ctx := context.Background()

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldBedrooms, Value: raw(t, "3")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldHasBalcony, Value: raw(t, true)}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldTotalSize, Value: raw(t, 850)}))
	assert.Equal(t, 3, rec.record.Bedrooms)
	assert.True(t, rec.record.HasBalcony)
	assert.Equal(t, 850, *rec.record.TotalSize)

	err := e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldBathrooms, Value: raw(t, -1)})
	assert.ErrorIs(t, err, ErrInvalidValue)
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldFloorNumber, Value: raw(t, "top")}))
	assert.Nil(t, rec.record.FloorNumber)
}

func TestCapacity_Operations(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepCapacity, rec, Deps{})
	ctx := context.Background()

	require.NoError(t, e.Apply(ctx, Op{Op: OpDecrement, Field: domain.FieldMaxGuests}))
	assert.Equal(t, 1, rec.record.MaxGuests)
	require.NoError(t, e.Apply(ctx, Op{Op: OpIncrement, Field: domain.FieldMaxGuests}))
	assert.Equal(t, 2, rec.record.MaxGuests)

	err := e.Apply(ctx, Op{Op: OpRemoveBed, Index: idx(0)})
	assert.ErrorIs(t, err, ErrLastBed)

	require.NoError(t, e.Apply(ctx, Op{Op: OpAddBed}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSetBedType, Index: idx(1), Value: raw(t, "sofa-bed")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpIncrement, Field: domain.FieldBeds, Index: idx(1)}))
	assert.Equal(t, []domain.Bed{{Type: "queen", Count: 1}, {Type: "sofa-bed", Count: 2}}, rec.record.Beds)

	require.NoError(t, e.Apply(ctx, Op{Op: OpRemoveBed, Index: idx(0)}))
	assert.Equal(t, []domain.Bed{{Type: "sofa-bed", Count: 2}}, rec.record.Beds)

	err = e.Apply(ctx, Op{Op: OpSetBedType, Index: idx(9), Value: raw(t, "king")})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	err = e.Apply(ctx, Op{Op: OpRemoveBed})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldPetsAllowed, Value: raw(t, true)}))
	assert.True(t, rec.record.PetsAllowed)
	assert.Equal(t, 2, rec.record.MaxGuests)

	view := e.(Viewer).View().(CapacityView)
	assert.True(t, view.CanDecrementGuests)
	assert.False(t, view.CanRemoveBed)
	assert.Equal(t, 2, view.TotalBeds)
}

func TestAmenities_ToggleAndSummary(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepAmenities, rec, Deps{})
	ctx := context.Background()

	require.NoError(t, e.Apply(ctx, Op{Op: OpToggle, Category: "general", Value: raw(t, "Free Wi-Fi")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpToggle, Category: domain.FieldSecurityFeatures, Value: raw(t, "Doorman")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpToggle, Category: "kitchen", Value: raw(t, "Oven")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpToggle, Category: "kitchen", Value: raw(t, "Oven")}))

	assert.Equal(t, []string{"Free Wi-Fi"}, rec.record.Amenities)
	assert.Equal(t, []string{}, rec.record.KitchenAppliances)
	assert.Equal(t, []string{"Doorman"}, rec.record.SecurityFeatures)

	summary := e.(*Amenities).Summary()
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, []string{"Free Wi-Fi", "Doorman"}, summary.Selected)

	err := e.Apply(ctx, Op{Op: OpToggle, Category: "spa", Value: raw(t, "Sauna")})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDescriptions_CapsAndSuggestions(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepDescriptions, rec, Deps{})
	ctx := context.Background()

	long := make([]rune, MaxListingTitle+1)
	for i := range long {
		long[i] = 'x'
	}
	err := e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldListingTitle, Value: raw(t, string(long))})
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, "", rec.record.ListingTitle)

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldListingTitle, Value: raw(t, string(long[:MaxListingTitle]))}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpAdd, Field: domain.FieldHighlights, Value: raw(t, "Prime Location")}))
	err = e.Apply(ctx, Op{Op: OpAdd, Field: domain.FieldLanguagesSpoken, Value: raw(t, "")})
	assert.ErrorIs(t, err, ErrEmptyTag)

	view := e.(Viewer).View().(DescriptionsView)
	assert.Len(t, view.HighlightSuggestions, HighlightSuggestions)
	assert.NotContains(t, view.HighlightSuggestions, "Prime Location")
	assert.Len(t, view.LanguageSuggestions, LanguageSuggestions)
	assert.Equal(t, CharCount{Used: MaxListingTitle, Max: MaxListingTitle}, view.Counts[domain.FieldListingTitle])
}

func TestMedia_UploadRemoveCover(t *testing.T) {
	rec := &recorder{record: domain.NewRecord(domain.NewFragment(domain.ListingRecord{Images: []string{"a", "b"}}, domain.FieldImages))}
	e := mount(t, wizard.StepMedia, rec, Deps{Media: fakeMedia{url: "c"}})
	ctx := context.Background()

	require.NoError(t, e.Apply(ctx, Op{Op: OpUpload, Category: "bedrooms"}))
	assert.Equal(t, []string{"a", "b", "c"}, rec.record.Images)

	require.NoError(t, e.Apply(ctx, Op{Op: OpSetCover, Index: idx(2)}))
	assert.Equal(t, []string{"c", "a", "b"}, rec.record.Images)
	assert.Equal(t, "c", rec.record.CoverImage())

	require.NoError(t, e.Apply(ctx, Op{Op: OpRemoveImage, Index: idx(1)}))
	assert.Equal(t, []string{"c", "b"}, rec.record.Images)

	err := e.Apply(ctx, Op{Op: OpSetCover, Index: idx(5)})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMedia_StoreErrors(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepMedia, rec, Deps{})
	err := e.Apply(context.Background(), Op{Op: OpUpload, Category: "cover"})
	assert.ErrorIs(t, err, ErrNoMediaStore)

	boom := errors.New("storage down")
	e = mount(t, wizard.StepMedia, rec, Deps{Media: fakeMedia{err: boom}})
	err = e.Apply(context.Background(), Op{Op: OpUpload, Category: "cover"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{}, rec.record.Images)
}

func TestPricing_PreviewAndPolicies(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepPricing, rec, Deps{})
	ctx := context.Background()
	assert.Nil(t, e.(*Pricing).Preview())

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldBasePrice, Value: raw(t, "120")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldCleaningFee, Value: raw(t, 45.5)}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldCurrency, Value: raw(t, "EUR")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpAdd, Field: domain.FieldHouseRules, Value: raw(t, "No smoking")}))
	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldCheckInTime, Value: raw(t, "15:00")}))

	p := e.(*Pricing).Preview()
	require.NotNil(t, p)
	assert.Equal(t, "€", p.Currency.Symbol)
	assert.Equal(t, 360.0, p.NightsTotal)
	assert.Equal(t, 405.5, p.TotalBeforeTax)
	assert.Nil(t, p.SecurityDeposit)
	assert.Equal(t, []string{"No smoking"}, rec.record.HouseRules)
	assert.Equal(t, "15:00", rec.record.CheckInTime)

	require.NoError(t, e.Apply(ctx, Op{Op: OpSet, Field: domain.FieldBasePrice, Value: raw(t, "free")}))
	assert.Equal(t, 0.0, rec.record.BasePrice)
	assert.Nil(t, e.(*Pricing).Preview())
}

func TestReview_OwnsNothing(t *testing.T) {
	rec := &recorder{}
	e := mount(t, wizard.StepReview, rec, Deps{})
	assert.Empty(t, e.Fragment().Keys)
	assert.Empty(t, rec.record.Keys())
	assert.ErrorIs(t, e.Apply(context.Background(), Op{Op: OpSet, Field: domain.FieldTitle}), ErrUnsupportedOp)

	view := e.(Viewer).View().(ReviewView)
	assert.False(t, view.Verdict.Complete)
	assert.Len(t, view.Verdict.Missing, 7)
}
