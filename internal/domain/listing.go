package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StringList stores an ordered string sequence in a json column and always
// marshals to a JSON array (never null).
type StringList []string

// Scan implements sql.Scanner for reading from DB (json column).
func (s *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*s = out
	return nil
}

// Value implements driver.Valuer for writing to DB.
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

const ListingStatusSubmitted = "submitted"

// Listing is a submitted wizard record. The required review fields are
// flattened into columns; the full record is kept as JSON.
type Listing struct {
	ListingID     uuid.UUID      `gorm:"column:listing_id;type:uuid;primaryKey" json:"listing_id"`
	Title         string         `gorm:"column:title;not null" json:"title"`
	ApartmentType string         `gorm:"column:apartment_type;not null" json:"apartment_type"`
	Country       string         `gorm:"column:country;not null" json:"country"`
	City          string         `gorm:"column:city;not null" json:"city"`
	StreetAddress string         `gorm:"column:street_address;not null" json:"street_address"`
	BasePrice     float64        `gorm:"column:base_price;type:decimal(18,2);not null" json:"base_price"`
	Currency      string         `gorm:"column:currency;type:varchar(3)" json:"currency"`
	MaxGuests     int            `gorm:"column:max_guests;not null" json:"max_guests"`
	CoverImageURL string         `gorm:"column:cover_image_url" json:"cover_image_url"`
	Images        StringList     `gorm:"column:images;type:json" json:"images"`
	Record        datatypes.JSON `gorm:"column:record;type:jsonb;not null" json:"record"`
	Status        string         `gorm:"column:status;type:varchar(20);default:'submitted'" json:"status"`
	CreatedAt     time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Listing) TableName() string {
	return "Listings"
}

// BeforeCreate sets listing_id if not already set (DBs without default uuid).
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}

const ListingEventSubmitted = "SUBMITTED"

// ListingEvent is an audit entry written alongside listing changes.
type ListingEvent struct {
	EventID   uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	ListingID uuid.UUID      `gorm:"column:listing_id;type:uuid;not null" json:"listing_id"`
	EventType string         `gorm:"column:event_type;type:varchar(30);not null" json:"event_type"`
	EventData datatypes.JSON `gorm:"column:event_data;type:jsonb;not null" json:"event_data"`
	CreatedAt time.Time      `gorm:"column:createdAt" json:"createdAt"`
}

func (ListingEvent) TableName() string {
	return "ListingEvents"
}

func (le *ListingEvent) BeforeCreate(tx *gorm.DB) error {
	if le.EventID == uuid.Nil {
		le.EventID = uuid.New()
	}
	return nil
}
