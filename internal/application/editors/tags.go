package editors

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTag     = errors.New("Tag cannot be empty")
	ErrDuplicateTag = errors.New("Tag already added")
)

// TagList is an ordered, duplicate-free list of free-text entries.
type TagList []string

// Add appends the trimmed candidate. Comparison is exact and case-sensitive.
func (t TagList) Add(candidate string) (TagList, error) {
	v := strings.TrimSpace(candidate)
	if v == "" {
		return t, ErrEmptyTag
	}
	for _, existing := range t {
		if existing == v {
			return t, ErrDuplicateTag
		}
	}
	out := make(TagList, len(t), len(t)+1)
	copy(out, t)
	return append(out, v), nil
}

// Remove drops the first entry equal to value. Order of the rest is kept.
func (t TagList) Remove(value string) TagList {
	out := make(TagList, 0, len(t))
	removed := false
	for _, existing := range t {
		if !removed && existing == value {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out
}

func (t TagList) Contains(value string) bool {
	for _, existing := range t {
		if existing == value {
			return true
		}
	}
	return false
}

// Suggestions returns reference entries not yet selected, at most limit of them.
func (t TagList) Suggestions(reference []string, limit int) []string {
	out := []string{}
	for _, r := range reference {
		if len(out) == limit {
			break
		}
		if !t.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}
