package editors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"listing-wizard/internal/application/drafts"
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"

	"github.com/rs/zerolog/log"
)

var (
	ErrIncomplete        = errors.New("Complete all required fields to publish your listing")
	ErrAlreadySubmitting = errors.New("Submission already in progress")
)

// DefaultSubmitDelay is the fixed pause before a publish is handed over.
const DefaultSubmitDelay = 2 * time.Second

// Preview caps.
const (
	PreviewDescriptionRunes = 200
	PreviewHighlights       = 6
	PreviewAmenities        = 8
	PreviewPhotos           = 4
)

type requiredField struct {
	label   string
	missing func(domain.ListingRecord) bool
}

var requiredFields = []requiredField{
	{"Apartment Title", func(r domain.ListingRecord) bool { return r.Title == "" }},
	{"Apartment Type", func(r domain.ListingRecord) bool { return r.ApartmentType == "" }},
	{"Country", func(r domain.ListingRecord) bool { return r.Country == "" }},
	{"City", func(r domain.ListingRecord) bool { return r.City == "" }},
	{"Street Address", func(r domain.ListingRecord) bool { return r.StreetAddress == "" }},
	{"Base Price", func(r domain.ListingRecord) bool { return r.BasePrice <= 0 }},
	{"Max Guests", func(r domain.ListingRecord) bool { return r.MaxGuests <= 0 }},
}

// CompletenessVerdict lists the missing required labels in fixed order.
type CompletenessVerdict struct {
	Missing  []string `json:"missing"`
	Complete bool     `json:"complete"`
}

func Verdict(r domain.ListingRecord) CompletenessVerdict {
	v := CompletenessVerdict{Missing: []string{}}
	for _, f := range requiredFields {
		if f.missing(r) {
			v.Missing = append(v.Missing, f.label)
		}
	}
	v.Complete = len(v.Missing) == 0
	return v
}

// ListingPreview is the condensed listing shown before publishing.
type ListingPreview struct {
	Title           string          `json:"title"`
	Location        string          `json:"location"`
	MaxGuests       int             `json:"maxGuests"`
	ApartmentType   string          `json:"apartmentType"`
	BuildingType    string          `json:"buildingType"`
	ListingCategory string          `json:"listingCategory"`
	OccupancyType   string          `json:"occupancyType"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	KitchenType     string          `json:"kitchenType"`
	Description     string          `json:"description"`
	Highlights      []string        `json:"highlights"`
	MoreHighlights  int             `json:"moreHighlights"`
	Amenities       []string        `json:"amenities"`
	MoreAmenities   int             `json:"moreAmenities"`
	PhotoCount      int             `json:"photoCount"`
	Photos          []string        `json:"photos"`
	Pricing         *PricingPreview `json:"pricing,omitempty"`
}

const (
	placeholderTitle = "Your Apartment Title"
	notSpecified     = "Not specified"
)

func BuildPreview(r domain.ListingRecord) ListingPreview {
	p := ListingPreview{
		Title:           orDefault(orDefault(r.Title, r.ListingTitle), placeholderTitle),
		MaxGuests:       r.MaxGuests,
		ApartmentType:   orDefault(r.ApartmentType, notSpecified),
		BuildingType:    orDefault(r.BuildingType, notSpecified),
		ListingCategory: orDefault(r.ListingCategory, notSpecified),
		OccupancyType:   orDefault(r.OccupancyType, notSpecified),
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		KitchenType:     orDefault(r.KitchenType, notSpecified),
		Description:     clip(r.FullDescription, PreviewDescriptionRunes),
		PhotoCount:      len(r.Images),
		Pricing:         PreviewPricing(r),
	}
	var parts []string
	for _, s := range []string{r.StreetAddress, r.City, r.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	p.Location = strings.Join(parts, ", ")
	p.Highlights, p.MoreHighlights = head(r.Highlights, PreviewHighlights)
	p.Amenities, p.MoreAmenities = head(r.Amenities, PreviewAmenities)
	p.Photos, _ = head(r.Images, PreviewPhotos)
	return p
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func head(list []string, n int) ([]string, int) {
	if len(list) <= n {
		return orEmpty(list), 0
	}
	return append([]string(nil), list[:n]...), len(list) - n
}

// Review owns no record keys; it reads the authoritative record.
type Review struct {
	form
	record domain.ListingRecord
}

type ReviewView struct {
	Verdict CompletenessVerdict `json:"verdict"`
	Preview ListingPreview      `json:"preview"`
}

func NewReview(record domain.ListingRecord, report ReportFunc) *Review {
	e := &Review{
		form:   form{step: wizard.StepReview, report: report},
		record: record.Clone(),
	}
	e.emit()
	return e
}

func (e *Review) View() any {
	return ReviewView{Verdict: Verdict(e.record), Preview: BuildPreview(e.record)}
}

func (e *Review) Apply(_ context.Context, op Op) error {
	return unsupported(op)
}

// PublishState is the submit button state.
type PublishState string

const (
	PublishIdle       PublishState = "idle"
	PublishSubmitting PublishState = "submitting"
)

// Publisher gates submission on the verdict and hands the record to the
// controller after a fixed delay. Callers hold the lock around every method; the
// delayed hand-over acquires it itself.
type Publisher struct {
	controller  *wizard.Controller
	lock        sync.Locker
	delay       time.Duration
	drafts      drafts.Store
	owner       string
	onSubmitted func()

	state     PublishState
	lastError error
}

type PublisherConfig struct {
	Delay       time.Duration
	Drafts      drafts.Store
	DraftOwner  string
	OnSubmitted func()
}

func NewPublisher(c *wizard.Controller, lock sync.Locker, cfg PublisherConfig) *Publisher {
	if cfg.Drafts == nil {
		cfg.Drafts = drafts.NoDraft{}
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	return &Publisher{
		controller:  c,
		lock:        lock,
		delay:       cfg.Delay,
		drafts:      cfg.Drafts,
		owner:       cfg.DraftOwner,
		onSubmitted: cfg.OnSubmitted,
		state:       PublishIdle,
	}
}

func (p *Publisher) State() PublishState {
	return p.state
}

// LastError is the failure of the previous hand-over, if any.
func (p *Publisher) LastError() error {
	return p.lastError
}

// Publish starts the delayed submission. It never cancels once started.
func (p *Publisher) Publish(ctx context.Context) error {
	if p.state == PublishSubmitting {
		return ErrAlreadySubmitting
	}
	if v := Verdict(p.controller.Record()); !v.Complete {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(v.Missing, ", "))
	}
	p.state = PublishSubmitting
	p.lastError = nil
	submitCtx := context.WithoutCancel(ctx)
	time.AfterFunc(p.delay, func() {
		p.lock.Lock()
		defer p.lock.Unlock()
		p.finish(submitCtx)
	})
	return nil
}

func (p *Publisher) finish(ctx context.Context) {
	p.state = PublishIdle
	if err := p.controller.Submit(ctx); err != nil {
		p.lastError = err
		log.Error().Err(err).Msg("Listing submission failed")
		return
	}
	log.Info().Str("title", p.controller.Record().Title).Msg("Listing submitted")
	if p.onSubmitted != nil {
		p.onSubmitted()
	}
}

// SaveDraft stores the authoritative record for a later resume.
func (p *Publisher) SaveDraft(ctx context.Context) error {
	if p.state == PublishSubmitting {
		return ErrAlreadySubmitting
	}
	return p.drafts.Save(ctx, p.owner, p.controller.Record())
}
