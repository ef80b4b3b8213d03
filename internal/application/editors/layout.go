package editors

import (
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Layout edits rooms, kitchen, balcony, size and floor.
type Layout struct {
	form
}

func NewLayout(record domain.ListingRecord, report ReportFunc) *Layout {
	e := &Layout{form{
		step: wizard.StepLayout,
		keys: []string{
			domain.FieldBedrooms, domain.FieldBathrooms, domain.FieldHasBathroomHalf,
			domain.FieldHasLivingRoom, domain.FieldLivingRoomSeating, domain.FieldKitchenType,
			domain.FieldHasBalcony, domain.FieldBalconyDescription, domain.FieldTotalSize,
			domain.FieldSizeUnit, domain.FieldFloorNumber, domain.FieldHasElevator,
		},
		report: report,
	}}
	e.setters = map[string]setter{
		domain.FieldBedrooms:           countField(func(r *domain.ListingRecord) *int { return &r.Bedrooms }, 0),
		domain.FieldBathrooms:          countField(func(r *domain.ListingRecord) *int { return &r.Bathrooms }, 0),
		domain.FieldHasBathroomHalf:    boolField(func(r *domain.ListingRecord) *bool { return &r.HasBathroomHalf }),
		domain.FieldHasLivingRoom:      boolField(func(r *domain.ListingRecord) *bool { return &r.HasLivingRoom }),
		domain.FieldLivingRoomSeating:  optionalIntField(func(r *domain.ListingRecord) **int { return &r.LivingRoomSeating }),
		domain.FieldKitchenType:        stringField(func(r *domain.ListingRecord) *string { return &r.KitchenType }),
		domain.FieldHasBalcony:         boolField(func(r *domain.ListingRecord) *bool { return &r.HasBalcony }),
		domain.FieldBalconyDescription: stringField(func(r *domain.ListingRecord) *string { return &r.BalconyDescription }),
		domain.FieldTotalSize:          optionalIntField(func(r *domain.ListingRecord) **int { return &r.TotalSize }),
		domain.FieldSizeUnit:           stringField(func(r *domain.ListingRecord) *string { return &r.SizeUnit }),
		domain.FieldFloorNumber:        optionalIntField(func(r *domain.ListingRecord) **int { return &r.FloorNumber }),
		domain.FieldHasElevator:        boolField(func(r *domain.ListingRecord) *bool { return &r.HasElevator }),
	}
	e.draft = domain.ListingRecord{
		Bedrooms:           record.Bedrooms,
		Bathrooms:          record.Bathrooms,
		HasBathroomHalf:    record.HasBathroomHalf,
		HasLivingRoom:      record.HasLivingRoom,
		LivingRoomSeating:  orNil(record.LivingRoomSeating),
		KitchenType:        record.KitchenType,
		HasBalcony:         record.HasBalcony,
		BalconyDescription: record.BalconyDescription,
		TotalSize:          orNil(record.TotalSize),
		SizeUnit:           orDefault(record.SizeUnit, domain.SizeUnitSqft),
		FloorNumber:        orNil(record.FloorNumber),
		HasElevator:        record.HasElevator,
	}
	e.emit()
	return e
}
