package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*CanvasRepo
	*BoardRepo
	*NoteRepo
	*ActivityRepo

	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CanvasRepo:   &CanvasRepo{db: db},
		BoardRepo:    &BoardRepo{db: db},
		NoteRepo:     &NoteRepo{db: db},
		ActivityRepo: &ActivityRepo{db: db},
		db:           db,
	}
}

// Ping verifies the underlying connection is still usable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
