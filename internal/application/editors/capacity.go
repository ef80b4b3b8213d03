package editors

import (
	"context"
	"encoding/json"
	"fmt"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Capacity edits guest count, beds and house policies for children and pets.
type Capacity struct {
	form
	guests Stepper
	beds   BedList
}

type CapacityView struct {
	CanDecrementGuests bool `json:"canDecrementGuests"`
	CanRemoveBed       bool `json:"canRemoveBed"`
	TotalBeds          int  `json:"totalBeds"`
}

func NewCapacity(record domain.ListingRecord, report ReportFunc) *Capacity {
	e := &Capacity{
		form: form{
			step: wizard.StepCapacity,
			keys: []string{
				domain.FieldMaxGuests, domain.FieldBeds, domain.FieldChildrenAllowed,
				domain.FieldPetsAllowed, domain.FieldPetNotes,
			},
			report: report,
		},
		guests: NewStepper(record.MaxGuests),
		beds:   NewBedList(record.Beds),
	}
	e.setters = map[string]setter{
		domain.FieldChildrenAllowed: boolField(func(r *domain.ListingRecord) *bool { return &r.ChildrenAllowed }),
		domain.FieldPetsAllowed:     boolField(func(r *domain.ListingRecord) *bool { return &r.PetsAllowed }),
		domain.FieldPetNotes:        stringField(func(r *domain.ListingRecord) *string { return &r.PetNotes }),
	}
	e.draft = domain.ListingRecord{
		ChildrenAllowed: record.ChildrenAllowed,
		PetsAllowed:     record.PetsAllowed,
		PetNotes:        record.PetNotes,
	}
	e.emit()
	return e
}

func (e *Capacity) emit() {
	e.draft.MaxGuests = e.guests.Value
	e.draft.Beds = append([]domain.Bed(nil), e.beds...)
	e.form.emit()
}

func (e *Capacity) IncrementGuests() {
	e.guests.Increment()
	e.emit()
}

// DecrementGuests is a no-op at one guest; nothing is reported then.
func (e *Capacity) DecrementGuests() {
	if e.guests.Decrement() {
		e.emit()
	}
}

func (e *Capacity) AddBed() {
	e.beds.Add()
	e.emit()
}

func (e *Capacity) RemoveBed(i int) error {
	if err := e.beds.Remove(i); err != nil {
		return err
	}
	e.emit()
	return nil
}

func (e *Capacity) SetBedType(i int, bedType string) error {
	if err := e.beds.SetType(i, bedType); err != nil {
		return err
	}
	e.emit()
	return nil
}

func (e *Capacity) IncrementBed(i int) error {
	if err := e.beds.Increment(i); err != nil {
		return err
	}
	e.emit()
	return nil
}

func (e *Capacity) DecrementBed(i int) error {
	if err := e.beds.Decrement(i); err != nil {
		return err
	}
	e.emit()
	return nil
}

func (e *Capacity) View() any {
	return CapacityView{
		CanDecrementGuests: e.guests.CanDecrement(),
		CanRemoveBed:       e.beds.CanRemove(),
		TotalBeds:          e.beds.TotalBeds(),
	}
}

func (e *Capacity) Apply(_ context.Context, op Op) error {
	switch {
	case op.Op == OpIncrement && op.Field == domain.FieldMaxGuests:
		e.IncrementGuests()
		return nil
	case op.Op == OpDecrement && op.Field == domain.FieldMaxGuests:
		e.DecrementGuests()
		return nil
	case op.Op == OpSet && op.Field == domain.FieldMaxGuests:
		n, err := parseCount(op.Value, StepperFloor)
		if err != nil {
			return err
		}
		e.guests = NewStepper(n)
		e.emit()
		return nil
	case op.Op == OpAddBed:
		e.AddBed()
		return nil
	case op.Op == OpRemoveBed:
		i, err := op.index()
		if err != nil {
			return err
		}
		return e.RemoveBed(i)
	case op.Op == OpSetBedType:
		i, err := op.index()
		if err != nil {
			return err
		}
		var bedType string
		if err := json.Unmarshal(op.Value, &bedType); err != nil || bedType == "" {
			return fmt.Errorf("%w: bed type expects a string", ErrInvalidValue)
		}
		return e.SetBedType(i, bedType)
	case op.Op == OpIncrement && op.Field == domain.FieldBeds:
		i, err := op.index()
		if err != nil {
			return err
		}
		return e.IncrementBed(i)
	case op.Op == OpDecrement && op.Field == domain.FieldBeds:
		i, err := op.index()
		if err != nil {
			return err
		}
		return e.DecrementBed(i)
	}
	if handled, err := e.form.apply(op); handled {
		return err
	}
	return unsupported(op)
}
