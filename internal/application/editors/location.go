package editors

import (
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Location edits the address and the neighborhood.
type Location struct {
	form
}

func NewLocation(record domain.ListingRecord, report ReportFunc) *Location {
	e := &Location{form{
		step: wizard.StepLocation,
		keys: []string{
			domain.FieldCountry, domain.FieldCity, domain.FieldStreetAddress, domain.FieldZipCode,
			domain.FieldNearbyAttractions, domain.FieldNeighborhoodDescription,
		},
		report: report,
	}}
	e.setters = map[string]setter{
		domain.FieldCountry:                 stringField(func(r *domain.ListingRecord) *string { return &r.Country }),
		domain.FieldCity:                    stringField(func(r *domain.ListingRecord) *string { return &r.City }),
		domain.FieldStreetAddress:           stringField(func(r *domain.ListingRecord) *string { return &r.StreetAddress }),
		domain.FieldZipCode:                 stringField(func(r *domain.ListingRecord) *string { return &r.ZipCode }),
		domain.FieldNeighborhoodDescription: stringField(func(r *domain.ListingRecord) *string { return &r.NeighborhoodDescription }),
	}
	e.tags = map[string]func(*domain.ListingRecord) *[]string{
		domain.FieldNearbyAttractions: func(r *domain.ListingRecord) *[]string { return &r.NearbyAttractions },
	}
	e.draft = domain.ListingRecord{
		Country:                 record.Country,
		City:                    record.City,
		StreetAddress:           record.StreetAddress,
		ZipCode:                 record.ZipCode,
		NearbyAttractions:       orEmpty(record.NearbyAttractions),
		NeighborhoodDescription: record.NeighborhoodDescription,
	}
	e.emit()
	return e
}

// AddAttraction appends a nearby attraction.
func (e *Location) AddAttraction(name string) error {
	next, err := TagList(e.draft.NearbyAttractions).Add(name)
	if err != nil {
		return err
	}
	e.draft.NearbyAttractions = next
	e.emit()
	return nil
}

func (e *Location) RemoveAttraction(name string) {
	e.draft.NearbyAttractions = TagList(e.draft.NearbyAttractions).Remove(name)
	e.emit()
}
