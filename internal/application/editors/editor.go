package editors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

var (
	ErrUnsupportedOp   = errors.New("Unsupported editor operation")
	ErrInvalidValue    = errors.New("Invalid value")
	ErrIndexOutOfRange = errors.New("Index out of range")
	ErrTooLong         = errors.New("Value exceeds maximum length")
	ErrNoMediaStore    = errors.New("No media store configured")
	ErrUnknownStep     = errors.New("Unknown step")
)

// Operation names accepted by Apply.
const (
	OpSet         = "set"
	OpAdd         = "add"
	OpRemove      = "remove"
	OpIncrement   = "increment"
	OpDecrement   = "decrement"
	OpAddBed      = "add_bed"
	OpRemoveBed   = "remove_bed"
	OpSetBedType  = "set_bed_type"
	OpToggle      = "toggle"
	OpUpload      = "upload"
	OpRemoveImage = "remove_image"
	OpSetCover    = "set_cover"
)

// Op is the wire form of one editor mutation.
type Op struct {
	Op       string          `json:"op"`
	Field    string          `json:"field,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
	Index    *int            `json:"index,omitempty"`
	Category string          `json:"category,omitempty"`
}

// index returns the op's index or ErrIndexOutOfRange when it is missing.
func (o Op) index() (int, error) {
	if o.Index == nil {
		return 0, fmt.Errorf("%w: index is required", ErrIndexOutOfRange)
	}
	return *o.Index, nil
}

// ReportFunc receives an editor's whole local draft.
type ReportFunc func(domain.Fragment)

// Editor is a mounted step. Every successful mutation reports the full draft
// through the ReportFunc given at mount time.
type Editor interface {
	Step() wizard.StepID
	Fragment() domain.Fragment
	Apply(ctx context.Context, op Op) error
}

// Viewer is implemented by editors that expose derived, read-only data.
type Viewer interface {
	View() any
}

// MediaStore supplies the URL of a newly added photo.
type MediaStore interface {
	UploadURL(ctx context.Context, category string) (string, error)
}

// Deps are the collaborators an editor may need.
type Deps struct {
	Media MediaStore
}

// Mount builds the editor for step seeded from record, and reports its
// initial draft once.
func Mount(step wizard.StepID, record domain.ListingRecord, report ReportFunc, deps Deps) (Editor, error) {
	if report == nil {
		report = func(domain.Fragment) {}
	}
	switch step {
	case wizard.StepBasics:
		return NewBasics(record, report), nil
	case wizard.StepLocation:
		return NewLocation(record, report), nil
	case wizard.StepLayout:
		return NewLayout(record, report), nil
	case wizard.StepCapacity:
		return NewCapacity(record, report), nil
	case wizard.StepAmenities:
		return NewAmenities(record, report), nil
	case wizard.StepDescriptions:
		return NewDescriptions(record, report), nil
	case wizard.StepMedia:
		return NewMedia(record, report, deps.Media), nil
	case wizard.StepPricing:
		return NewPricing(record, report), nil
	case wizard.StepReview:
		return NewReview(record, report), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStep, step)
}

// form is the shared part of every editor: the draft, the keys the step
// owns and the per-field mutation tables.
type form struct {
	step    wizard.StepID
	keys    []string
	draft   domain.ListingRecord
	setters map[string]setter
	tags    map[string]func(*domain.ListingRecord) *[]string
	report  ReportFunc
}

func (f *form) Step() wizard.StepID {
	return f.step
}

// Fragment returns a deep copy of the draft carrying every owned key.
func (f *form) Fragment() domain.Fragment {
	return domain.NewRecord(domain.NewFragment(f.draft, f.keys...)).Fragment()
}

func (f *form) emit() {
	f.report(f.Fragment())
}

// apply handles set on scalar fields and add/remove on tag fields.
func (f *form) apply(op Op) (bool, error) {
	switch op.Op {
	case OpSet:
		set, ok := f.setters[op.Field]
		if !ok {
			return false, nil
		}
		if err := set(&f.draft, op.Value); err != nil {
			return true, err
		}
	case OpAdd, OpRemove:
		get, ok := f.tags[op.Field]
		if !ok {
			return false, nil
		}
		var value string
		if err := json.Unmarshal(op.Value, &value); err != nil {
			return true, fmt.Errorf("%w: %s expects a string", ErrInvalidValue, op.Field)
		}
		list := get(&f.draft)
		if op.Op == OpAdd {
			next, err := TagList(*list).Add(value)
			if err != nil {
				return true, err
			}
			*list = next
		} else {
			*list = TagList(*list).Remove(value)
		}
	default:
		return false, nil
	}
	f.emit()
	return true, nil
}

func (f *form) Apply(_ context.Context, op Op) error {
	handled, err := f.apply(op)
	if !handled {
		return unsupported(op)
	}
	return err
}

func unsupported(op Op) error {
	if op.Field != "" {
		return fmt.Errorf("%w: %s %s", ErrUnsupportedOp, op.Op, op.Field)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedOp, op.Op)
}

// orNil mirrors the "x || undefined" seeding of optional numbers.
func orNil[T int | float64](p *T) *T {
	if p == nil || *p == 0 {
		return nil
	}
	v := *p
	return &v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
