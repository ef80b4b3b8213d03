package editors

import (
	"math"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// PreviewNights is the stay length used by the pricing preview.
const PreviewNights = 3

// Pricing edits rates, fees and the stay policies.
type Pricing struct {
	form
}

// PricingPreview is shown only once a base price is set.
type PricingPreview struct {
	Currency        domain.Currency `json:"currency"`
	Nights          int             `json:"nights"`
	NightsTotal     float64         `json:"nightsTotal"`
	CleaningFee     *float64        `json:"cleaningFee,omitempty"`
	TotalBeforeTax  float64         `json:"totalBeforeTax"`
	SecurityDeposit *float64        `json:"securityDeposit,omitempty"`
}

func NewPricing(record domain.ListingRecord, report ReportFunc) *Pricing {
	e := &Pricing{form{
		step: wizard.StepPricing,
		keys: []string{
			domain.FieldBasePrice, domain.FieldCurrency, domain.FieldCleaningFee, domain.FieldSecurityDeposit,
			domain.FieldCheckInTime, domain.FieldCheckOutTime, domain.FieldHouseRules,
		},
		report: report,
	}}
	e.setters = map[string]setter{
		domain.FieldBasePrice:       floatOrZeroField(func(r *domain.ListingRecord) *float64 { return &r.BasePrice }),
		domain.FieldCurrency:        stringField(func(r *domain.ListingRecord) *string { return &r.Currency }),
		domain.FieldCleaningFee:     optionalFloatField(func(r *domain.ListingRecord) **float64 { return &r.CleaningFee }),
		domain.FieldSecurityDeposit: optionalFloatField(func(r *domain.ListingRecord) **float64 { return &r.SecurityDeposit }),
		domain.FieldCheckInTime:     stringField(func(r *domain.ListingRecord) *string { return &r.CheckInTime }),
		domain.FieldCheckOutTime:    stringField(func(r *domain.ListingRecord) *string { return &r.CheckOutTime }),
	}
	e.tags = map[string]func(*domain.ListingRecord) *[]string{
		domain.FieldHouseRules: func(r *domain.ListingRecord) *[]string { return &r.HouseRules },
	}
	e.draft = domain.ListingRecord{
		BasePrice:       record.BasePrice,
		Currency:        orDefault(record.Currency, domain.DefaultCurrency),
		CleaningFee:     orNil(record.CleaningFee),
		SecurityDeposit: orNil(record.SecurityDeposit),
		CheckInTime:     record.CheckInTime,
		CheckOutTime:    record.CheckOutTime,
		HouseRules:      orEmpty(record.HouseRules),
	}
	e.emit()
	return e
}

// Preview returns the 3-night cost breakdown, or nil while there is no base price.
func (e *Pricing) Preview() *PricingPreview {
	return PreviewPricing(e.draft)
}

// PreviewPricing computes the breakdown from any record holding pricing fields.
func PreviewPricing(r domain.ListingRecord) *PricingPreview {
	if r.BasePrice <= 0 {
		return nil
	}
	cur, ok := domain.FindCurrency(r.Currency)
	if !ok {
		cur = domain.Currency{Code: r.Currency}
	}
	p := &PricingPreview{
		Currency:    cur,
		Nights:      PreviewNights,
		NightsTotal: roundCents(r.BasePrice * PreviewNights),
	}
	p.TotalBeforeTax = p.NightsTotal
	if fee := orNil(r.CleaningFee); fee != nil {
		p.CleaningFee = fee
		p.TotalBeforeTax = roundCents(p.TotalBeforeTax + *fee)
	}
	p.SecurityDeposit = orNil(r.SecurityDeposit)
	return p
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func (e *Pricing) View() any {
	return e.Preview()
}
