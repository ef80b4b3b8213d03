package flow

import (
	"listing-wizard/internal/application/editors"
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

type ReviewState struct {
	Verdict      editors.CompletenessVerdict `json:"verdict"`
	Preview      editors.ListingPreview      `json:"preview"`
	PublishState editors.PublishState        `json:"publishState"`
	LastError    string                      `json:"lastError,omitempty"`
}

// FormState is present while the form view is showing.
type FormState struct {
	Step      wizard.Step          `json:"step"`
	Position  string               `json:"position"`
	IsFirst   bool                 `json:"isFirst"`
	IsLast    bool                 `json:"isLast"`
	Progress  wizard.ProgressView  `json:"progress"`
	Completed []wizard.StepID      `json:"completed"`
	Record    domain.ListingRecord `json:"record"`
	Draft     domain.Fragment      `json:"draft"`
	Derived   any                  `json:"derived,omitempty"`
	Review    ReviewState          `json:"review"`
}

// State is the full client-facing snapshot of a session.
type State struct {
	SessionID string     `json:"sessionId"`
	View      View       `json:"view"`
	Form      *FormState `json:"form,omitempty"`
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{SessionID: s.ID, View: s.view}
	if s.view != ViewForm || s.controller == nil {
		return st
	}
	c := s.controller
	fs := &FormState{
		Step:      c.Current(),
		Position:  c.Position(),
		IsFirst:   c.IsFirst(),
		IsLast:    c.IsLast(),
		Progress:  c.Progress(),
		Completed: c.Completed(),
		Record:    c.Record(),
		Draft:     s.editor.Fragment(),
		Review:    s.review(),
	}
	if v, ok := s.editor.(editors.Viewer); ok {
		fs.Derived = v.View()
	}
	st.Form = fs
	return st
}
