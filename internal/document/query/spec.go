// Package query implements the list-query pipeline over the document
// collection: filter, two-level sort with policy-ranked statuses, and page
// window computation. The pipeline is pure; it never mutates its input and
// holds no state between calls.
package query

import "time"

// Defaults applied by Normalize. Each one is a policy decision surfaced as a
// named constant rather than behavior inferred at call sites.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultSortBy   = "createdAt"
	DefaultSortDir  = "desc"
)

// Spec is the caller-supplied filter, sort, and pagination parameters for a
// list request. Zero values mean "not supplied".
type Spec struct {
	Status        string
	TitleContains string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time

	SortBy           string
	SortDir          string
	SecondarySort    string
	SecondarySortDir string

	Page     int
	PageSize int
}

// Normalize returns a copy of the spec with all documented defaults applied:
// sort by creation time descending, page 1, page size 20. Filters are left
// untouched; an absent filter stays absent.
func (s Spec) Normalize() Spec {
	if s.SortBy == "" {
		s.SortBy = DefaultSortBy
	}
	if s.SortDir == "" {
		s.SortDir = DefaultSortDir
	}
	if s.Page <= 0 {
		s.Page = DefaultPage
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	return s
}
