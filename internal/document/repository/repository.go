package repository

import (
	"context"
	"errors"

	"github.com/docintegrator/doc-service/internal/document"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Store is the persistence contract the document service depends on. The
// list-query pipeline runs over List's full enumeration; backends are free
// to add push-down optimizations as long as the observable semantics stay
// identical.
type Store interface {
	List(ctx context.Context) ([]document.Document, error)
	Get(ctx context.Context, id string) (*document.Document, error)
	Insert(ctx context.Context, d *document.Document) error
	Replace(ctx context.Context, d *document.Document) error
	Delete(ctx context.Context, id string) error
}
