package wizard

import (
	"context"
	"errors"
	"fmt"

	"listing-wizard/internal/domain"
)

var (
	ErrNoSteps       = errors.New("Wizard needs at least one step")
	ErrDuplicateStep = errors.New("Wizard steps must have unique ids")
	ErrNoSubmitter   = errors.New("No submission handler configured")
)

// Submitter receives the finished record. Persistence, idempotency and
// failure reporting are its concern; the controller only hands the record over.
type Submitter interface {
	Submit(ctx context.Context, record domain.ListingRecord) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, record domain.ListingRecord) error

func (f SubmitterFunc) Submit(ctx context.Context, record domain.ListingRecord) error {
	return f(ctx, record)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSubmitter sets the submission collaborator.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) { c.submitter = s }
}

// WithExit sets the collaborator invoked when retreating past the first step.
func WithExit(fn func()) Option {
	return func(c *Controller) { c.onExit = fn }
}

// Controller sequences a fixed list of steps and owns the authoritative record.
// It is not safe for concurrent use; callers serialize access.
type Controller struct {
	steps     []Step
	current   int
	completed []StepID
	record    domain.ListingRecord
	submitter Submitter
	onExit    func()
}

// NewController starts at the first step. initial may be nil for an empty record.
func NewController(steps []Step, initial *domain.ListingRecord, opts ...Option) (*Controller, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	seen := make(map[StepID]bool, len(steps))
	for _, s := range steps {
		if seen[s.ID] {
			return nil, ErrDuplicateStep
		}
		seen[s.ID] = true
	}
	c := &Controller{steps: append([]Step(nil), steps...)}
	if initial != nil {
		c.record = initial.Clone()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Advance marks the current step completed and moves to its successor. The
// last step is left by submitting, so Advance there changes nothing.
func (c *Controller) Advance() Step {
	if c.current == len(c.steps)-1 {
		return c.steps[c.current]
	}
	id := c.steps[c.current].ID
	if !c.IsCompleted(id) {
		c.completed = append(c.completed, id)
	}
	c.current++
	return c.steps[c.current]
}

// Retreat moves to the previous step. At the first step it invokes the exit
// collaborator instead and reports exited.
func (c *Controller) Retreat() (exited bool) {
	if c.current == 0 {
		if c.onExit != nil {
			c.onExit()
		}
		return true
	}
	c.current--
	return false
}

// ReportFragment merges every key f carries into the record.
func (c *Controller) ReportFragment(f domain.Fragment) {
	c.record.Merge(f)
}

// Submit hands the full record to the submission collaborator. Completeness
// is not checked here.
func (c *Controller) Submit(ctx context.Context) error {
	if c.submitter == nil {
		return ErrNoSubmitter
	}
	return c.submitter.Submit(ctx, c.record.Clone())
}

// Record returns a copy of the authoritative record.
func (c *Controller) Record() domain.ListingRecord {
	return c.record.Clone()
}

func (c *Controller) Current() Step {
	return c.steps[c.current]
}

func (c *Controller) CurrentIndex() int {
	return c.current
}

func (c *Controller) IsFirst() bool {
	return c.current == 0
}

func (c *Controller) IsLast() bool {
	return c.current == len(c.steps)-1
}

// Position renders the one-based position, e.g. "Step 3 of 9".
func (c *Controller) Position() string {
	return fmt.Sprintf("Step %d of %d", c.current+1, len(c.steps))
}

func (c *Controller) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// Completed returns completed step ids in the order they were first completed.
func (c *Controller) Completed() []StepID {
	return append([]StepID{}, c.completed...)
}

func (c *Controller) IsCompleted(id StepID) bool {
	for _, done := range c.completed {
		if done == id {
			return true
		}
	}
	return false
}

// Progress renders the indicator for the controller's current position.
func (c *Controller) Progress() ProgressView {
	return Progress(c.steps, c.Current().ID, c.completed)
}
