package query

import (
	"strings"
	"time"

	"github.com/docintegrator/doc-service/internal/document"
)

// Filter returns the documents satisfying every supplied predicate in the
// spec (logical AND). Absent predicates impose no constraint. The input
// slice is never modified.
func Filter(docs []document.Document, s Spec) []document.Document {
	out := make([]document.Document, 0, len(docs))
	for _, d := range docs {
		if Matches(d, s) {
			out = append(out, d)
		}
	}
	return out
}

// Matches reports whether a single document satisfies all predicates of the
// spec.
func Matches(d document.Document, s Spec) bool {
	if s.Status != "" && !strings.EqualFold(d.Status, s.Status) {
		return false
	}
	if s.TitleContains != "" &&
		!strings.Contains(strings.ToLower(d.Title), strings.ToLower(s.TitleContains)) {
		return false
	}
	if s.CreatedFrom != nil && d.CreatedAt.Before(*s.CreatedFrom) {
		return false
	}
	if s.CreatedTo != nil && !d.CreatedAt.Before(endOfDay(*s.CreatedTo)) {
		return false
	}
	return true
}

// endOfDay returns the first instant after the calendar day containing t.
// The "to" bound is inclusive of the whole named day: callers pass a date
// and expect that entire day in the result, not an instant cutoff.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
