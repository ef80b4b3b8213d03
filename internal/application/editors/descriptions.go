package editors

import (
	"unicode/utf8"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Length caps for the free-text description fields.
const (
	MaxListingTitle    = 80
	MaxFullDescription = 1000
	MaxHostBio         = 500
)

// Suggestion caps.
const (
	HighlightSuggestions = 6
	LanguageSuggestions  = 8
)

// Descriptions edits the public copy, highlights and host profile.
type Descriptions struct {
	form
}

type CharCount struct {
	Used int `json:"used"`
	Max  int `json:"max"`
}

type DescriptionsView struct {
	HighlightSuggestions []string             `json:"highlightSuggestions"`
	LanguageSuggestions  []string             `json:"languageSuggestions"`
	Counts               map[string]CharCount `json:"counts"`
}

func NewDescriptions(record domain.ListingRecord, report ReportFunc) *Descriptions {
	e := &Descriptions{form{
		step: wizard.StepDescriptions,
		keys: []string{
			domain.FieldListingTitle, domain.FieldFullDescription, domain.FieldHighlights,
			domain.FieldHostBio, domain.FieldLanguagesSpoken,
		},
		report: report,
	}}
	e.setters = map[string]setter{
		domain.FieldListingTitle:    cappedStringField(func(r *domain.ListingRecord) *string { return &r.ListingTitle }, MaxListingTitle),
		domain.FieldFullDescription: cappedStringField(func(r *domain.ListingRecord) *string { return &r.FullDescription }, MaxFullDescription),
		domain.FieldHostBio:         cappedStringField(func(r *domain.ListingRecord) *string { return &r.HostBio }, MaxHostBio),
	}
	e.tags = map[string]func(*domain.ListingRecord) *[]string{
		domain.FieldHighlights:      func(r *domain.ListingRecord) *[]string { return &r.Highlights },
		domain.FieldLanguagesSpoken: func(r *domain.ListingRecord) *[]string { return &r.LanguagesSpoken },
	}
	e.draft = domain.ListingRecord{
		ListingTitle:    record.ListingTitle,
		FullDescription: record.FullDescription,
		Highlights:      orEmpty(record.Highlights),
		HostBio:         record.HostBio,
		LanguagesSpoken: orEmpty(record.LanguagesSpoken),
	}
	e.emit()
	return e
}

func (e *Descriptions) View() any {
	return DescriptionsView{
		HighlightSuggestions: TagList(e.draft.Highlights).Suggestions(domain.SuggestedHighlights, HighlightSuggestions),
		LanguageSuggestions:  TagList(e.draft.LanguagesSpoken).Suggestions(domain.CommonLanguages, LanguageSuggestions),
		Counts: map[string]CharCount{
			domain.FieldListingTitle:    {utf8.RuneCountInString(e.draft.ListingTitle), MaxListingTitle},
			domain.FieldFullDescription: {utf8.RuneCountInString(e.draft.FullDescription), MaxFullDescription},
			domain.FieldHostBio:         {utf8.RuneCountInString(e.draft.HostBio), MaxHostBio},
		},
	}
}
