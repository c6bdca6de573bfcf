package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docintegrator/doc-service/internal/document"
)

// PostgresStore is the relational Store backed by a documents table
// (id, title, content, status, created_at). Query composition happens in the
// service layer; this store only enumerates and mutates rows.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]document.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, status, created_at FROM documents")
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []document.Document{}
	for rows.Next() {
		var d document.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.Status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*document.Document, error) {
	var d document.Document
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, content, status, created_at FROM documents WHERE id = $1", id).
		Scan(&d.ID, &d.Title, &d.Content, &d.Status, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

func (s *PostgresStore) Insert(ctx context.Context, d *document.Document) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO documents (id, title, content, status, created_at) VALUES ($1, $2, $3, $4, $5)",
		d.ID, d.Title, d.Content, d.Status, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Replace(ctx context.Context, d *document.Document) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE documents SET title = $2, content = $3, status = $4 WHERE id = $1",
		d.ID, d.Title, d.Content, d.Status)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update document rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
