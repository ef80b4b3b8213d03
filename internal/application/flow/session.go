package flow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"listing-wizard/internal/application/drafts"
	"listing-wizard/internal/application/editors"
	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"

	"github.com/rs/zerolog/log"
)

// View is the top-level screen of a session.
type View string

const (
	ViewWelcome View = "welcome"
	ViewForm    View = "form"
	ViewSuccess View = "success"
)

var ErrWrongView = errors.New("Action not available in the current view")

// Config carries the collaborators shared by every session.
type Config struct {
	Steps       []wizard.Step
	Drafts      drafts.Store
	Media       editors.MediaStore
	Submitter   wizard.Submitter
	SubmitDelay time.Duration
}

func (c Config) withDefaults() Config {
	if len(c.Steps) == 0 {
		c.Steps = wizard.DefaultSteps
	}
	if c.Drafts == nil {
		c.Drafts = drafts.NoDraft{}
	}
	return c
}

// Session is one client's pass through welcome, form and success. All
// methods serialize on the session lock, which the delayed submission
// also takes when it fires.
type Session struct {
	ID         string
	DraftOwner string

	mu         sync.Mutex
	cfg        Config
	view       View
	controller *wizard.Controller
	editor     editors.Editor
	publisher  *editors.Publisher
	lastUsed   atomic.Int64
}

func newSession(id, owner string, cfg Config, now time.Time) *Session {
	s := &Session{ID: id, DraftOwner: owner, cfg: cfg.withDefaults(), view: ViewWelcome}
	s.lastUsed.Store(now.UnixNano())
	return s
}

func (s *Session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

func (s *Session) idleSince() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

// HasDraft reports whether the entry screen should offer a resume.
func (s *Session) HasDraft(ctx context.Context) (bool, error) {
	return s.cfg.Drafts.Exists(ctx, s.DraftOwner)
}

// StartNew shows the form with a fresh controller seeded from initial.
func (s *Session) StartNew(initial *domain.ListingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start(initial)
}

// ResumeDraft starts the form from the saved draft of the session's owner.
func (s *Session) ResumeDraft(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewWelcome {
		return ErrWrongView
	}
	record, err := s.cfg.Drafts.Load(ctx, s.DraftOwner)
	if err != nil {
		return err
	}
	return s.start(&record)
}

func (s *Session) start(initial *domain.ListingRecord) error {
	if s.view != ViewWelcome {
		return ErrWrongView
	}
	opts := []wizard.Option{wizard.WithExit(s.exitToWelcome)}
	if s.cfg.Submitter != nil {
		opts = append(opts, wizard.WithSubmitter(s.cfg.Submitter))
	}
	c, err := wizard.NewController(s.cfg.Steps, initial, opts...)
	if err != nil {
		return err
	}
	s.controller = c
	s.publisher = editors.NewPublisher(c, &s.mu, editors.PublisherConfig{
		Delay:       s.cfg.SubmitDelay,
		Drafts:      s.cfg.Drafts,
		DraftOwner:  s.DraftOwner,
		OnSubmitted: s.showSuccess,
	})
	s.view = ViewForm
	if err := s.mount(); err != nil {
		s.discard()
		s.view = ViewWelcome
		return err
	}
	log.Debug().Str("session_id", s.ID).Msg("Wizard started")
	return nil
}

// mount replaces the editor with one for the current step.
func (s *Session) mount() error {
	e, err := editors.Mount(s.controller.Current().ID, s.controller.Record(), s.controller.ReportFragment,
		editors.Deps{Media: s.cfg.Media})
	if err != nil {
		return err
	}
	s.editor = e
	return nil
}

func (s *Session) discard() {
	s.controller = nil
	s.editor = nil
	s.publisher = nil
}

// exitToWelcome runs inside Retreat, with the lock already held.
func (s *Session) exitToWelcome() {
	s.discard()
	s.view = ViewWelcome
}

// showSuccess runs inside the delayed submission, with the lock already held.
func (s *Session) showSuccess() {
	s.discard()
	s.view = ViewSuccess
}

// form checks that the form is showing and no submission is pending.
func (s *Session) form() error {
	if s.view != ViewForm || s.controller == nil {
		return ErrWrongView
	}
	if s.publisher.State() == editors.PublishSubmitting {
		return editors.ErrAlreadySubmitting
	}
	return nil
}

func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.form(); err != nil {
		return err
	}
	before := s.controller.CurrentIndex()
	s.controller.Advance()
	if s.controller.CurrentIndex() == before {
		return nil
	}
	return s.mount()
}

// Retreat moves back one step, or leaves the form from the first step.
func (s *Session) Retreat() (exited bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.form(); err != nil {
		return false, err
	}
	if s.controller.Retreat() {
		return true, nil
	}
	return false, s.mount()
}

// Report merges a raw fragment and reseeds the mounted editor from the result.
func (s *Session) Report(f domain.Fragment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.form(); err != nil {
		return err
	}
	s.controller.ReportFragment(f)
	return s.mount()
}

// Apply runs an editor operation against the mounted step.
func (s *Session) Apply(ctx context.Context, op editors.Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.form(); err != nil {
		return err
	}
	return s.editor.Apply(ctx, op)
}

// Publish starts the delayed submission from the review step.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm || s.controller == nil || !s.controller.IsLast() {
		return ErrWrongView
	}
	return s.publisher.Publish(ctx)
}

func (s *Session) SaveDraft(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm || s.controller == nil {
		return ErrWrongView
	}
	return s.publisher.SaveDraft(ctx)
}

// Restart returns from the success screen to the entry screen.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewSuccess {
		return ErrWrongView
	}
	s.view = ViewWelcome
	return nil
}

// Review evaluates the authoritative record.
func (s *Session) Review() (ReviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm || s.controller == nil {
		return ReviewState{}, ErrWrongView
	}
	return s.review(), nil
}

func (s *Session) review() ReviewState {
	record := s.controller.Record()
	rs := ReviewState{
		Verdict:      editors.Verdict(record),
		Preview:      editors.BuildPreview(record),
		PublishState: s.publisher.State(),
	}
	if err := s.publisher.LastError(); err != nil {
		rs.LastError = err.Error()
	}
	return rs
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}
