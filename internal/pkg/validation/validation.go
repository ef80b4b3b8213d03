package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseOptionalInt reads free-text numeric input. Blank or unparsable text is
// undefined (nil) rather than an error.
func ParseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	// integral floats like "3.0" are accepted, anything else is dropped
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	n := int(math.Trunc(f))
	return &n
}

// ParseOptionalFloat reads free-text money input. Blank or unparsable text is nil.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// ParseFloatOrZero is ParseOptionalFloat collapsing undefined to 0.
func ParseFloatOrZero(s string) float64 {
	if f := ParseOptionalFloat(s); f != nil {
		return *f
	}
	return 0
}

// WithinLength reports whether s has at most max characters.
func WithinLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
