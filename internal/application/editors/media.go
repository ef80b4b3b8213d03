package editors

import (
	"context"
	"fmt"

	"listing-wizard/internal/application/wizard"
	"listing-wizard/internal/domain"
)

// Media edits the ordered photo list. Index 0 is the cover.
type Media struct {
	form
	store MediaStore
}

type MediaView struct {
	Cover      string                 `json:"cover"`
	Count      int                    `json:"count"`
	Categories []domain.PhotoCategory `json:"categories"`
}

func NewMedia(record domain.ListingRecord, report ReportFunc, store MediaStore) *Media {
	e := &Media{
		form: form{
			step:   wizard.StepMedia,
			keys:   []string{domain.FieldImages},
			report: report,
		},
		store: store,
	}
	e.draft = domain.ListingRecord{Images: orEmpty(record.Images)}
	e.emit()
	return e
}

// Upload asks the media store for a new photo URL and appends it.
func (e *Media) Upload(ctx context.Context, category string) (string, error) {
	if e.store == nil {
		return "", ErrNoMediaStore
	}
	url, err := e.store.UploadURL(ctx, category)
	if err != nil {
		return "", fmt.Errorf("upload %s photo: %w", category, err)
	}
	e.draft.Images = append(append([]string(nil), e.draft.Images...), url)
	e.emit()
	return url, nil
}

func (e *Media) RemoveImage(i int) error {
	images := e.draft.Images
	if i < 0 || i >= len(images) {
		return fmt.Errorf("%w: image %d of %d", ErrIndexOutOfRange, i, len(images))
	}
	out := make([]string, 0, len(images)-1)
	out = append(out, images[:i]...)
	e.draft.Images = append(out, images[i+1:]...)
	e.emit()
	return nil
}

// SetCover moves image i to the front. The others keep their relative order.
func (e *Media) SetCover(i int) error {
	if i < 0 || i >= len(e.draft.Images) {
		return fmt.Errorf("%w: image %d of %d", ErrIndexOutOfRange, i, len(e.draft.Images))
	}
	e.draft.Images = MoveToFront(e.draft.Images, i)
	e.emit()
	return nil
}

// MoveToFront returns a copy of list with element i first, removed from its
// old position. Out of range indexes return an unchanged copy.
func MoveToFront(list []string, i int) []string {
	out := make([]string, 0, len(list))
	if i < 0 || i >= len(list) {
		return append(out, list...)
	}
	out = append(out, list[i])
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func (e *Media) View() any {
	return MediaView{
		Cover:      e.draft.CoverImage(),
		Count:      len(e.draft.Images),
		Categories: domain.PhotoCategories,
	}
}

func (e *Media) Apply(ctx context.Context, op Op) error {
	switch op.Op {
	case OpUpload:
		_, err := e.Upload(ctx, op.Category)
		return err
	case OpRemoveImage:
		i, err := op.index()
		if err != nil {
			return err
		}
		return e.RemoveImage(i)
	case OpSetCover:
		i, err := op.index()
		if err != nil {
			return err
		}
		return e.SetCover(i)
	}
	return unsupported(op)
}
