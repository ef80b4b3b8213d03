package editors

import (
	"errors"
	"fmt"

	"listing-wizard/internal/domain"
)

var ErrLastBed = errors.New("At least one bed is required")

// BedList is the bed arrangement. It is never empty and every count is at least 1.
type BedList []domain.Bed

// NewBedList copies beds, defaulting to a single queen bed when there are none.
func NewBedList(beds []domain.Bed) BedList {
	if len(beds) == 0 {
		return BedList{{Type: domain.DefaultBedType, Count: 1}}
	}
	out := make(BedList, len(beds))
	for i, b := range beds {
		b.Count = NewStepper(b.Count).Value
		out[i] = b
	}
	return out
}

func (l BedList) check(i int) error {
	if i < 0 || i >= len(l) {
		return fmt.Errorf("%w: bed %d of %d", ErrIndexOutOfRange, i, len(l))
	}
	return nil
}

func (l BedList) SetType(i int, bedType string) error {
	if err := l.check(i); err != nil {
		return err
	}
	l[i].Type = bedType
	return nil
}

func (l BedList) Increment(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l[i].Count++
	return nil
}

// Decrement stops at a count of 1.
func (l BedList) Decrement(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	s := NewStepper(l[i].Count)
	s.Decrement()
	l[i].Count = s.Value
	return nil
}

// Add appends a queen bed with count 1.
func (l *BedList) Add() {
	*l = append(*l, domain.Bed{Type: domain.DefaultBedType, Count: 1})
}

// Remove drops row i unless it is the only row.
func (l *BedList) Remove(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	if len(*l) <= 1 {
		return ErrLastBed
	}
	out := make(BedList, 0, len(*l)-1)
	out = append(out, (*l)[:i]...)
	*l = append(out, (*l)[i+1:]...)
	return nil
}

// CanRemove drives whether remove controls are shown.
func (l BedList) CanRemove() bool {
	return len(l) > 1
}

// TotalBeds sums the counts of every row.
func (l BedList) TotalBeds() int {
	total := 0
	for _, b := range l {
		total += b.Count
	}
	return total
}
