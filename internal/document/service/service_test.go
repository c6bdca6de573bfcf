package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/docintegrator/doc-service/internal/document"
	"github.com/docintegrator/doc-service/internal/document/query"
	"github.com/docintegrator/doc-service/internal/document/repository"
)

func newTestService(t *testing.T) (Service, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return New(store, document.DefaultPolicy()), store
}

func validInput() Input {
	return Input{Title: "Quarterly report", Content: "numbers", Status: document.StatusDraft}
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	svc, _ := newTestService(t)

	d, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	require.WithinDuration(t, time.Now().UTC(), d.CreatedAt, time.Minute)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"missing title", Input{Content: "c", Status: document.StatusDraft}, "title"},
		{"overlong title", Input{Title: strings.Repeat("x", MaxTitleLen+1), Content: "c", Status: document.StatusDraft}, "title"},
		{"missing content", Input{Title: "t", Status: document.StatusDraft}, "content"},
		{"missing status", Input{Title: "t", Content: "c"}, "status"},
		{"unknown status", Input{Title: "t", Content: "c", Status: "Archived"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestCreate_StatusVocabularyIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)
	in := validInput()
	in.Status = "dRaFt"
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
}

func TestUpdate_PreservesIDAndCreatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, Input{
		Title: "Revised", Content: "new numbers", Status: document.StatusPublished,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "Revised", updated.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), "missing", validInput())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	require.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestList_RunsFullPipeline(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seed := []Input{
		{Title: "Alpha", Content: "a", Status: document.StatusDraft},
		{Title: "Beta", Content: "b", Status: document.StatusPublished},
		{Title: "Gamma", Content: "g", Status: document.StatusDraft},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, query.Spec{Status: document.StatusDraft, SortBy: "title", SortDir: "asc"})
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalCount)
	require.Equal(t, "Alpha", page.Items[0].Title)
	require.Equal(t, "Gamma", page.Items[1].Title)
}

func TestList_RejectsOutOfBoundsSpec(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		spec  query.Spec
		field string
	}{
		{"negative page", query.Spec{Page: -1}, "page"},
		{"oversized pageSize", query.Spec{PageSize: query.MaxPageSize + 1}, "pageSize"},
		{"unknown sortBy", query.Spec{SortBy: "owner"}, "sortBy"},
		{"bad sortDir", query.Spec{SortDir: "sideways"}, "sortDir"},
		{"unknown secondarySort", query.Spec{SecondarySort: "owner"}, "secondarySort"},
		{"inverted date range", func() query.Spec {
			from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
			return query.Spec{CreatedFrom: &from, CreatedTo: &to}
		}(), "createdFrom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.spec)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestList_DoesNotMutateStore(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	page, err := svc.List(ctx, query.Spec{})
	require.NoError(t, err)
	page.Items[0].Title = "mutated"

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Quarterly report", got.Title)
}
