package query

import (
	"sort"
	"strings"

	"github.com/docintegrator/doc-service/internal/document"
)

// comparator orders two documents: negative when a sorts before b, zero when
// they tie on this key.
type comparator func(a, b document.Document) int

// Sort returns a new slice holding docs in the total order composed from the
// spec's primary and secondary keys. Sort keys resolve case-insensitively;
// an unrecognized or missing primary key falls back to ordering by ID. The
// chain always terminates in an ID tie-break, so the result is deterministic
// for any input.
func Sort(docs []document.Document, s Spec, p document.Policy) []document.Document {
	out := append([]document.Document(nil), docs...)
	chain := compose(s, p)
	sort.Slice(out, func(i, j int) bool {
		return chain(out[i], out[j]) < 0
	})
	return out
}

func compose(s Spec, p document.Policy) comparator {
	var cmps []comparator

	if primary, ok := keyComparator(s.SortBy, p); ok {
		cmps = append(cmps, directed(primary, s.SortDir))
		if strings.EqualFold(s.SortBy, document.SortFieldStatus) {
			// newest first within the same status, before any caller-supplied
			// secondary key
			cmps = append(cmps, directed(compareCreatedAt, "desc"))
		}
		if secondary, ok := keyComparator(s.SecondarySort, p); ok {
			cmps = append(cmps, directed(secondary, s.SecondarySortDir))
		}
	}

	cmps = append(cmps, compareID)

	return func(a, b document.Document) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// keyComparator resolves a sort field name to its ascending comparator.
func keyComparator(field string, p document.Policy) (comparator, bool) {
	switch strings.ToLower(field) {
	case strings.ToLower(document.SortFieldTitle):
		return func(a, b document.Document) int {
			return strings.Compare(a.Title, b.Title)
		}, true
	case strings.ToLower(document.SortFieldStatus):
		// business priority order via the policy rank table, not alphabetical
		return func(a, b document.Document) int {
			return p.StatusRank(a.Status) - p.StatusRank(b.Status)
		}, true
	case strings.ToLower(document.SortFieldCreatedAt):
		return compareCreatedAt, true
	default:
		return nil, false
	}
}

// directed applies a sort direction to a comparator. Any value other than
// "asc" (case-insensitive) means descending.
func directed(cmp comparator, dir string) comparator {
	if strings.EqualFold(dir, "asc") {
		return cmp
	}
	return func(a, b document.Document) int {
		return -cmp(a, b)
	}
}

func compareCreatedAt(a, b document.Document) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

func compareID(a, b document.Document) int {
	return strings.Compare(a.ID, b.ID)
}
