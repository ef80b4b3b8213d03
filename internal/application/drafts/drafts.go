package drafts

import (
	"context"
	"errors"

	"listing-wizard/internal/domain"
)

var (
	ErrNoDraft = errors.New("No draft available")
	ErrNoStore = errors.New("No draft store configured")
)

// DefaultOwner keys the draft of clients that do not name one.
const DefaultOwner = "default"

// Store keeps at most one saved record per owner key.
type Store interface {
	Load(ctx context.Context, owner string) (domain.ListingRecord, error)
	Save(ctx context.Context, owner string, record domain.ListingRecord) error
	Exists(ctx context.Context, owner string) (bool, error)
	Delete(ctx context.Context, owner string) error
}

// NoDraft never has a draft and cannot save one.
type NoDraft struct{}

func (NoDraft) Load(context.Context, string) (domain.ListingRecord, error) {
	return domain.ListingRecord{}, ErrNoDraft
}

func (NoDraft) Save(context.Context, string, domain.ListingRecord) error {
	return ErrNoStore
}

func (NoDraft) Exists(context.Context, string) (bool, error) {
	return false, nil
}

func (NoDraft) Delete(context.Context, string) error {
	return nil
}
