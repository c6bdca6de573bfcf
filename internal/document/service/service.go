package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/docintegrator/doc-service/internal/document"
	"github.com/docintegrator/doc-service/internal/document/query"
	"github.com/docintegrator/doc-service/internal/document/repository"
)

// ErrNotFound is returned when an operation targets a document that does not
// exist. It aliases the repository sentinel so callers need only one check.
var ErrNotFound = repository.ErrNotFound

// Input holds the mutable document fields accepted by create and update.
type Input struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// Service defines the document business operations used by the handler
// layer. List runs the filter → sort → paginate pipeline over the store's
// enumeration; reads never mutate any document.
type Service interface {
	List(ctx context.Context, spec query.Spec) (*document.Page, error)
	Get(ctx context.Context, id string) (*document.Document, error)
	Create(ctx context.Context, in Input) (*document.Document, error)
	Update(ctx context.Context, id string, in Input) (*document.Document, error)
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store  repository.Store
	policy document.Policy
}

// New returns a Service over the given store, ruled by the given policy.
func New(store repository.Store, policy document.Policy) Service {
	return &documentService{store: store, policy: policy}
}

func (s *documentService) List(ctx context.Context, spec query.Spec) (*document.Page, error) {
	if err := validateSpec(s.policy, spec); err != nil {
		return nil, err
	}
	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	page := query.Execute(docs, spec, s.policy)
	page.Items = project(page.Items)
	return &page, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*document.Document, error) {
	return s.store.Get(ctx, id)
}

func (s *documentService) Create(ctx context.Context, in Input) (*document.Document, error) {
	if err := validateInput(s.policy, in); err != nil {
		return nil, err
	}
	d := &document.Document{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Status:    in.Status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *documentService) Update(ctx context.Context, id string, in Input) (*document.Document, error) {
	if err := validateInput(s.policy, in); err != nil {
		return nil, err
	}
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// CreatedAt and ID are immutable; only the mutable fields change
	existing.Title = in.Title
	existing.Content = in.Content
	existing.Status = in.Status
	if err := s.store.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// project maps internal records to the externally exposed shape. Today the
// projection is the identity, but every listed document passes through here
// so future field redaction has a single seam.
func project(docs []document.Document) []document.Document {
	out := make([]document.Document, len(docs))
	copy(out, docs)
	return out
}
