package domain

import (
	"encoding/json"
	"fmt"
)

// Fragment is a step's full local draft as reported upward: the keys it owns
// and their values. Merging is keyed by Keys, never by which values are zero.
type Fragment struct {
	Keys   []string
	Values ListingRecord
}

// NewFragment pairs values with the keys they carry.
func NewFragment(values ListingRecord, keys ...string) Fragment {
	return Fragment{Keys: keys, Values: values}
}

// Has reports whether the fragment carries key.
func (f Fragment) Has(key string) bool {
	for _, k := range f.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (f Fragment) MarshalJSON() ([]byte, error) {
	return NewRecord(f).MarshalJSON()
}

// recordValues decodes record fields without ListingRecord's UnmarshalJSON.
type recordValues ListingRecord

// ParseFragment decodes a JSON object into a fragment carrying exactly the
// object's keys. A key set to null clears an optional field.
func ParseFragment(data []byte) (Fragment, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Fragment{}, err
	}
	for key := range raw {
		if !IsKnownField(key) {
			return Fragment{}, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
	}
	keys := make([]string, 0, len(raw))
	for _, key := range recordFieldOrder {
		if _, ok := raw[key]; ok {
			keys = append(keys, key)
		}
	}
	var values recordValues
	if err := json.Unmarshal(data, &values); err != nil {
		return Fragment{}, err
	}
	return Fragment{Keys: keys, Values: ListingRecord(values)}, nil
}

func (f *Fragment) UnmarshalJSON(data []byte) error {
	parsed, err := ParseFragment(data)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
