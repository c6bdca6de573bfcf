package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docintegrator/doc-service/internal/document"
)

func ids(docs []document.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestSort_StatusUsesRankTableNotAlphabet(t *testing.T) {
	docs := []document.Document{
		{ID: "1", Status: document.StatusPublished},
		{ID: "2", Status: document.StatusDraft},
		{ID: "3", Status: "Unknown"},
	}
	got := Sort(docs, Spec{SortBy: "status", SortDir: "asc"}, document.DefaultPolicy())
	// rank order Draft < Published < Unknown, not alphabetical
	require.Equal(t, []string{"2", "1", "3"}, ids(got))
}

func TestSort_StatusPrimaryBreaksTiesByCreatedAtDesc(t *testing.T) {
	docs := []document.Document{
		{ID: "old", Status: document.StatusDraft, CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "new", Status: document.StatusDraft, CreatedAt: ts("2024-02-01T00:00:00Z")},
		{ID: "pub", Status: document.StatusPublished, CreatedAt: ts("2023-01-01T00:00:00Z")},
	}
	got := Sort(docs, Spec{SortBy: "Status", SortDir: "asc"}, document.DefaultPolicy())
	// within the same status newest comes first
	require.Equal(t, []string{"new", "old", "pub"}, ids(got))
}

func TestSort_SecondaryKeyBreaksPrimaryTies(t *testing.T) {
	docs := []document.Document{
		{ID: "1", Title: "B", CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "2", Title: "A", CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "3", Title: "C", CreatedAt: ts("2024-02-01T00:00:00Z")},
	}
	got := Sort(docs, Spec{
		SortBy: "createdAt", SortDir: "asc",
		SecondarySort: "title", SecondarySortDir: "asc",
	}, document.DefaultPolicy())
	require.Equal(t, []string{"2", "1", "3"}, ids(got))
}

func TestSort_FieldNamesResolveCaseInsensitively(t *testing.T) {
	docs := []document.Document{
		{ID: "1", CreatedAt: ts("2024-01-02T00:00:00Z")},
		{ID: "2", CreatedAt: ts("2024-01-01T00:00:00Z")},
	}
	got := Sort(docs, Spec{SortBy: "CREATEDAT", SortDir: "ASC"}, document.DefaultPolicy())
	require.Equal(t, []string{"2", "1"}, ids(got))
}

func TestSort_UnknownFieldFallsBackToID(t *testing.T) {
	docs := []document.Document{
		{ID: "c"}, {ID: "a"}, {ID: "b"},
	}
	got := Sort(docs, Spec{SortBy: "nonsense"}, document.DefaultPolicy())
	require.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSort_UnrecognizedDirectionMeansDescending(t *testing.T) {
	docs := []document.Document{
		{ID: "1", Title: "A"},
		{ID: "2", Title: "B"},
	}
	got := Sort(docs, Spec{SortBy: "title", SortDir: "sideways"}, document.DefaultPolicy())
	require.Equal(t, []string{"2", "1"}, ids(got))
}

func TestSort_IdenticalKeysStillOrderDeterministically(t *testing.T) {
	docs := []document.Document{
		{ID: "z", Title: "Same", Status: document.StatusDraft, CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "a", Title: "Same", Status: document.StatusDraft, CreatedAt: ts("2024-01-01T00:00:00Z")},
		{ID: "m", Title: "Same", Status: document.StatusDraft, CreatedAt: ts("2024-01-01T00:00:00Z")},
	}
	spec := Spec{SortBy: "title", SortDir: "asc", SecondarySort: "status", SecondarySortDir: "asc"}
	got := Sort(docs, spec, document.DefaultPolicy())
	// id is the final tie-break
	require.Equal(t, []string{"a", "m", "z"}, ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	docs := []document.Document{
		{ID: "2"}, {ID: "1"},
	}
	_ = Sort(docs, Spec{}, document.DefaultPolicy())
	require.Equal(t, []string{"2", "1"}, ids(docs))
}
