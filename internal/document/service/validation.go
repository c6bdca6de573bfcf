package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docintegrator/doc-service/internal/document"
	"github.com/docintegrator/doc-service/internal/document/query"
)

// MaxTitleLen bounds document titles and title filters.
const MaxTitleLen = 200

// ValidationError carries per-field messages for a rejected request. It is
// distinct from not-found and store failures so the HTTP layer can translate
// each taxonomy member to its own status.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// validateInput checks the mutable document fields shared by create and
// update.
func validateInput(p document.Policy, in Input) error {
	ve := &ValidationError{}
	if in.Title == "" {
		ve.add("title", "title is required")
	} else if len([]rune(in.Title)) > MaxTitleLen {
		ve.add("title", fmt.Sprintf("title must not exceed %d characters", MaxTitleLen))
	}
	if in.Content == "" {
		ve.add("content", "content is required")
	}
	if in.Status == "" {
		ve.add("status", "status is required")
	} else if !p.IsAllowedStatus(in.Status) {
		ve.add("status", "status must be one of: "+strings.Join(p.AllowedStatuses, ", "))
	}
	return ve.orNil()
}

// validateSpec checks a list-query specification before it reaches the
// pipeline. Unset fields are no-ops; the pipeline applies the documented
// defaults. Supplied values outside their bounds are rejected rather than
// silently rewritten.
func validateSpec(p document.Policy, s query.Spec) error {
	ve := &ValidationError{}
	if s.Page < 0 {
		ve.add("page", "page must be greater than 0")
	}
	if s.PageSize < 0 || s.PageSize > query.MaxPageSize {
		ve.add("pageSize", fmt.Sprintf("pageSize must be between 1 and %d", query.MaxPageSize))
	}
	if s.SortBy != "" && !p.IsSortField(s.SortBy) {
		ve.add("sortBy", "sortBy must be one of: "+strings.Join(p.SortFields, ", "))
	}
	if s.SortDir != "" && !isSortDir(s.SortDir) {
		ve.add("sortDir", "sortDir must be asc or desc")
	}
	if s.SecondarySort != "" && !p.IsSortField(s.SecondarySort) {
		ve.add("secondarySort", "secondarySort must be one of: "+strings.Join(p.SortFields, ", "))
	}
	if s.SecondarySortDir != "" && !isSortDir(s.SecondarySortDir) {
		ve.add("secondarySortOrder", "secondarySortOrder must be asc or desc")
	}
	if s.CreatedFrom != nil && s.CreatedTo != nil && s.CreatedFrom.After(*s.CreatedTo) {
		ve.add("createdFrom", "createdFrom must be before or equal to createdTo")
	}
	if len([]rune(s.TitleContains)) > MaxTitleLen {
		ve.add("titleContains", fmt.Sprintf("titleContains must not exceed %d characters", MaxTitleLen))
	}
	return ve.orNil()
}

func isSortDir(dir string) bool {
	return strings.EqualFold(dir, "asc") || strings.EqualFold(dir, "desc")
}
