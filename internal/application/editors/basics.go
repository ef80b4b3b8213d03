package editors

import (
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Basics edits the apartment's title, classification and build year.
type Basics struct {
	form
}

func NewBasics(record domain.ListingRecord, report ReportFunc) *Basics {
	e := &Basics{form{
		step: wizard.StepBasics,
		keys: []string{
			domain.FieldTitle, domain.FieldApartmentType, domain.FieldBuildingType,
			domain.FieldListingCategory, domain.FieldOccupancyType, domain.FieldYearBuilt,
		},
		report: report,
	}}
	e.setters = map[string]setter{
		domain.FieldTitle:           stringField(func(r *domain.ListingRecord) *string { return &r.Title }),
		domain.FieldApartmentType:   stringField(func(r *domain.ListingRecord) *string { return &r.ApartmentType }),
		domain.FieldBuildingType:    stringField(func(r *domain.ListingRecord) *string { return &r.BuildingType }),
		domain.FieldListingCategory: stringField(func(r *domain.ListingRecord) *string { return &r.ListingCategory }),
		domain.FieldOccupancyType:   stringField(func(r *domain.ListingRecord) *string { return &r.OccupancyType }),
		domain.FieldYearBuilt:       optionalIntField(func(r *domain.ListingRecord) **int { return &r.YearBuilt }),
	}
	e.draft = domain.ListingRecord{
		Title:           record.Title,
		ApartmentType:   record.ApartmentType,
		BuildingType:    record.BuildingType,
		ListingCategory: record.ListingCategory,
		OccupancyType:   record.OccupancyType,
		YearBuilt:       orNil(record.YearBuilt),
	}
	e.emit()
	return e
}
