package editors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"listing-wizard/internal/domain"
	"listing-wizard/internal/pkg/validation"
)

type setter func(r *domain.ListingRecord, raw json.RawMessage) error

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// textValue accepts a JSON string or number and returns it as text, so
// numeric inputs go through the same permissive parsing as typed text.
func textValue(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w: expected text or number", ErrInvalidValue)
	}
	return n.String(), nil
}

func stringField(get func(*domain.ListingRecord) *string) setter {
	return cappedStringField(get, 0)
}

// cappedStringField rejects values longer than max characters; max 0 means no cap.
func cappedStringField(get func(*domain.ListingRecord) *string, max int) setter {
	return func(r *domain.ListingRecord, raw json.RawMessage) error {
		var s string
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &s); err != nil {
				return fmt.Errorf("%w: expected a string", ErrInvalidValue)
			}
		}
		if max > 0 && !validation.WithinLength(s, max) {
			return fmt.Errorf("%w: at most %d characters", ErrTooLong, max)
		}
		*get(r) = s
		return nil
	}
}

func boolField(get func(*domain.ListingRecord) *bool) setter {
	return func(r *domain.ListingRecord, raw json.RawMessage) error {
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("%w: expected a boolean", ErrInvalidValue)
		}
		*get(r) = b
		return nil
	}
}

// optionalIntField collapses blank or unparsable input to undefined.
func optionalIntField(get func(*domain.ListingRecord) **int) setter {
	return func(r *domain.ListingRecord, raw json.RawMessage) error {
		s, err := textValue(raw)
		if err != nil {
			return err
		}
		*get(r) = validation.ParseOptionalInt(s)
		return nil
	}
}

func optionalFloatField(get func(*domain.ListingRecord) **float64) setter {
	return func(r *domain.ListingRecord, raw json.RawMessage) error {
		s, err := textValue(raw)
		if err != nil {
			return err
		}
		*get(r) = validation.ParseOptionalFloat(s)
		return nil
	}
}

// floatOrZeroField collapses blank or unparsable input to 0.
func floatOrZeroField(get func(*domain.ListingRecord) *float64) setter {
	return func(r *domain.ListingRecord, raw json.RawMessage) error {
		s, err := textValue(raw)
		if err != nil {
			return err
		}
		*get(r) = validation.ParseFloatOrZero(s)
		return nil
	}
}

// countField backs select inputs: the value must be an integer of at least min.
func countField(get func(*domain.ListingRecord) *int, min int) setter {
	return func(r *domain.ListingRecord, raw json.RawMessage) error {
		n, err := parseCount(raw, min)
		if err != nil {
			return err
		}
		*get(r) = n
		return nil
	}
}

func parseCount(raw json.RawMessage, min int) (int, error) {
	s, err := textValue(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min {
		return 0, fmt.Errorf("%w: expected an integer of at least %d", ErrInvalidValue, min)
	}
	return n, nil
}
