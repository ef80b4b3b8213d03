package editors

import (
	"context"
	"encoding/json"
	"fmt"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Amenities edits the six amenity category sets.
type Amenities struct {
	form
}

// AmenitySummary backs the "n amenities selected" panel.
type AmenitySummary struct {
	Total    int      `json:"total"`
	Selected []string `json:"selected"`
}

func NewAmenities(record domain.ListingRecord, report ReportFunc) *Amenities {
	e := &Amenities{form{step: wizard.StepAmenities, report: report}}
	for _, c := range domain.AmenityCategories {
		e.keys = append(e.keys, c.Field())
	}
	e.draft = domain.ListingRecord{
		Amenities:         orEmpty(record.Amenities),
		KitchenAppliances: orEmpty(record.KitchenAppliances),
		Entertainment:     orEmpty(record.Entertainment),
		ClimateControl:    orEmpty(record.ClimateControl),
		BuildingAmenities: orEmpty(record.BuildingAmenities),
		SecurityFeatures:  orEmpty(record.SecurityFeatures),
	}
	e.emit()
	return e
}

func (e *Amenities) category(c domain.AmenityCategory) *[]string {
	switch c {
	case domain.AmenityGeneral:
		return &e.draft.Amenities
	case domain.AmenityKitchen:
		return &e.draft.KitchenAppliances
	case domain.AmenityEntertainment:
		return &e.draft.Entertainment
	case domain.AmenityClimate:
		return &e.draft.ClimateControl
	case domain.AmenityBuilding:
		return &e.draft.BuildingAmenities
	case domain.AmenitySecurity:
		return &e.draft.SecurityFeatures
	}
	return nil
}

// Toggle adds amenity to the category when absent and removes it otherwise.
func (e *Amenities) Toggle(c domain.AmenityCategory, amenity string) error {
	set := e.category(c)
	if set == nil {
		return fmt.Errorf("%w: amenity category %q", ErrInvalidValue, c)
	}
	if amenity == "" {
		return fmt.Errorf("%w: amenity is required", ErrInvalidValue)
	}
	tags := TagList(*set)
	if tags.Contains(amenity) {
		*set = tags.Remove(amenity)
	} else {
		*set = append(append([]string(nil), tags...), amenity)
	}
	e.emit()
	return nil
}

// Summary counts selections across all categories, in category order.
func (e *Amenities) Summary() AmenitySummary {
	s := AmenitySummary{Selected: []string{}}
	for _, c := range domain.AmenityCategories {
		s.Selected = append(s.Selected, *e.category(c)...)
	}
	s.Total = len(s.Selected)
	return s
}

func (e *Amenities) View() any {
	return e.Summary()
}

func (e *Amenities) Apply(_ context.Context, op Op) error {
	if op.Op != OpToggle {
		return unsupported(op)
	}
	name := op.Category
	if name == "" {
		name = op.Field
	}
	c, ok := domain.ParseAmenityCategory(name)
	if !ok {
		return fmt.Errorf("%w: amenity category %q", ErrInvalidValue, name)
	}
	var amenity string
	if err := json.Unmarshal(op.Value, &amenity); err != nil {
		return fmt.Errorf("%w: amenity expects a string", ErrInvalidValue)
	}
	return e.Toggle(c, amenity)
}
