package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnknownField is returned when a fragment names a key ListingRecord does not have.
var ErrUnknownField = errors.New("Unknown listing field")

// Bed is one row of the bed arrangement.
type Bed struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ListingRecord is the aggregate a wizard assembles. Every field is optional
// until review; a key is defined once a fragment has carried it, and only
// defined keys are rendered to JSON.
type ListingRecord struct {
	// basics
	Title           string `json:"title"`
	ApartmentType   string `json:"apartmentType"`
	BuildingType    string `json:"buildingType"`
	ListingCategory string `json:"listingCategory"`
	OccupancyType   string `json:"occupancyType"`
	YearBuilt       *int   `json:"yearBuilt"`

	// location
	Country                 string   `json:"country"`
	City                    string   `json:"city"`
	StreetAddress           string   `json:"streetAddress"`
	ZipCode                 string   `json:"zipCode"`
	NearbyAttractions       []string `json:"nearbyAttractions"`
	NeighborhoodDescription string   `json:"neighborhoodDescription"`

	// layout
	Bedrooms           int    `json:"bedrooms"`
	Bathrooms          int    `json:"bathrooms"`
	HasBathroomHalf    bool   `json:"hasBathroomHalf"`
	HasLivingRoom      bool   `json:"hasLivingRoom"`
	LivingRoomSeating  *int   `json:"livingRoomSeating"`
	KitchenType        string `json:"kitchenType"`
	HasBalcony         bool   `json:"hasBalcony"`
	BalconyDescription string `json:"balconyDescription"`
	TotalSize          *int   `json:"totalSize"`
	SizeUnit           string `json:"sizeUnit"`
	FloorNumber        *int   `json:"floorNumber"`
	HasElevator        bool   `json:"hasElevator"`

	// capacity
	MaxGuests       int    `json:"maxGuests"`
	Beds            []Bed  `json:"beds"`
	ChildrenAllowed bool   `json:"childrenAllowed"`
	PetsAllowed     bool   `json:"petsAllowed"`
	PetNotes        string `json:"petNotes"`

	// amenities
	Amenities         []string `json:"amenities"`
	KitchenAppliances []string `json:"kitchenAppliances"`
	Entertainment     []string `json:"entertainment"`
	ClimateControl    []string `json:"climateControl"`
	BuildingAmenities []string `json:"buildingAmenities"`
	SecurityFeatures  []string `json:"securityFeatures"`

	// descriptions
	ListingTitle    string   `json:"listingTitle"`
	FullDescription string   `json:"fullDescription"`
	Highlights      []string `json:"highlights"`
	HostBio         string   `json:"hostBio"`
	LanguagesSpoken []string `json:"languagesSpoken"`

	// media
	Images []string `json:"images"`

	// pricing
	BasePrice       float64  `json:"basePrice"`
	Currency        string   `json:"currency"`
	CleaningFee     *float64 `json:"cleaningFee"`
	SecurityDeposit *float64 `json:"securityDeposit"`

	// policies
	CheckInTime  string   `json:"checkInTime"`
	CheckOutTime string   `json:"checkOutTime"`
	HouseRules   []string `json:"houseRules"`

	defined map[string]bool
}

var recordFieldIndex, recordFieldOrder = indexRecordFields()

func indexRecordFields() (map[string]int, []string) {
	t := reflect.TypeOf(ListingRecord{})
	index := make(map[string]int, t.NumField())
	order := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		index[name] = i
		order = append(order, name)
	}
	return index, order
}

// IsKnownField reports whether key names a ListingRecord field.
func IsKnownField(key string) bool {
	_, ok := recordFieldIndex[key]
	return ok
}

// RecordFields returns every record key in declaration order.
func RecordFields() []string {
	return append([]string(nil), recordFieldOrder...)
}

// NewRecord builds a record holding exactly the keys of f.
func NewRecord(f Fragment) ListingRecord {
	var r ListingRecord
	r.Merge(f)
	return r
}

// Has reports whether key has been carried by any merged fragment.
func (r ListingRecord) Has(key string) bool {
	return r.defined[key]
}

// Keys returns the defined keys in declaration order.
func (r ListingRecord) Keys() []string {
	keys := make([]string, 0, len(r.defined))
	for _, key := range recordFieldOrder {
		if r.defined[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// Merge overwrites every key carried by f, including keys carried with a nil
// optional value. Keys absent from f are untouched. Slices and pointers are
// copied so the record never aliases a caller's draft.
func (r *ListingRecord) Merge(f Fragment) {
	if len(f.Keys) == 0 {
		return
	}
	if r.defined == nil {
		r.defined = make(map[string]bool, len(f.Keys))
	}
	dst := reflect.ValueOf(r).Elem()
	src := reflect.ValueOf(f.Values)
	for _, key := range f.Keys {
		i, ok := recordFieldIndex[key]
		if !ok {
			continue
		}
		dst.Field(i).Set(cloneValue(src.Field(i)))
		r.defined[key] = true
	}
}

// Fragment returns every defined key of r as a fragment.
func (r ListingRecord) Fragment() Fragment {
	return Fragment{Keys: r.Keys(), Values: r}
}

// Clone returns a deep copy.
func (r ListingRecord) Clone() ListingRecord {
	return NewRecord(r.Fragment())
}

// CoverImage returns images[0], or "" when there are no images.
func (r ListingRecord) CoverImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)
		return out
	case reflect.Ptr:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(v.Elem())
		return out
	}
	return v
}

// MarshalJSON renders defined keys only. Nil optional values are omitted and
// nil sequences render as [].
func (r ListingRecord) MarshalJSON() ([]byte, error) {
	v := reflect.ValueOf(r)
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range recordFieldOrder {
		if !r.defined[key] {
			continue
		}
		fv := v.Field(recordFieldIndex[key])
		var b []byte
		switch {
		case fv.Kind() == reflect.Ptr && fv.IsNil():
			continue
		case fv.Kind() == reflect.Slice && fv.IsNil():
			b = []byte("[]")
		default:
			var err error
			if b, err = json.Marshal(fv.Interface()); err != nil {
				return nil, fmt.Errorf("marshal %s: %w", key, err)
			}
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(`"` + key + `":`)
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON defines exactly the keys present in data.
func (r *ListingRecord) UnmarshalJSON(data []byte) error {
	f, err := ParseFragment(data)
	if err != nil {
		return err
	}
	*r = NewRecord(f)
	return nil
}
