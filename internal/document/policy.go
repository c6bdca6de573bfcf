package document

import "strings"

// Status labels accepted by the default policy. The vocabulary is a
// deployment choice, not a business rule baked into the engine; a different
// label set (or language) can be injected via Policy.
const (
	StatusDraft     = "Draft"
	StatusPending   = "Pending approval"
	StatusPublished = "Published"
)

// rankUnknown sorts any status outside the rank table after all known ones.
const rankUnknown = 99

// Canonical sort field names. Matching is case-insensitive.
const (
	SortFieldCreatedAt = "createdAt"
	SortFieldTitle     = "title"
	SortFieldStatus    = "status"
)

// Policy is the immutable rule set the query pipeline and the validators
// consult: which statuses exist, how statuses rank when sorted, and which
// fields may be sorted on. Injected once at startup.
type Policy struct {
	AllowedStatuses []string
	// StatusRanks maps a status label to its sort priority. Ascending status
	// sort yields lower ranks first. Labels absent from the table rank last.
	StatusRanks map[string]int
	SortFields  []string
}

// DefaultPolicy returns the policy used when no overrides are configured:
// Draft(1) < Pending approval(2) < Published(3) < everything else.
func DefaultPolicy() Policy {
	return Policy{
		AllowedStatuses: []string{StatusDraft, StatusPending, StatusPublished},
		StatusRanks: map[string]int{
			StatusDraft:     1,
			StatusPending:   2,
			StatusPublished: 3,
		},
		SortFields: []string{SortFieldCreatedAt, SortFieldTitle, SortFieldStatus},
	}
}

// StatusRank looks up the sort priority for a status label. The lookup is a
// pure table access, independent of locale or collation.
func (p Policy) StatusRank(status string) int {
	if r, ok := p.StatusRanks[status]; ok {
		return r
	}
	return rankUnknown
}

// IsAllowedStatus reports whether the label is in the vocabulary
// (case-insensitive).
func (p Policy) IsAllowedStatus(status string) bool {
	for _, s := range p.AllowedStatuses {
		if strings.EqualFold(s, status) {
			return true
		}
	}
	return false
}

// IsSortField reports whether the field may be sorted on (case-insensitive).
func (p Policy) IsSortField(field string) bool {
	for _, f := range p.SortFields {
		if strings.EqualFold(f, field) {
			return true
		}
	}
	return false
}
