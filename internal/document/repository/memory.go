package repository

import (
	"context"
	"sync"

	"github.com/docintegrator/doc-service/internal/document"
)

// MemoryStore is an in-memory Store used for unit tests and for running the
// service without a database. Documents are stored by value, so callers can
// never alias internal state.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]document.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]document.Document)}
}

func (m *MemoryStore) List(ctx context.Context) ([]document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]document.Document, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.docs[id]; ok {
		return &d, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Insert(ctx context.Context, d *document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[d.ID] = *d
	return nil
}

func (m *MemoryStore) Replace(ctx context.Context, d *document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[d.ID]; !ok {
		return ErrNotFound
	}
	m.docs[d.ID] = *d
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}
