package database

import "context"

// DataStore defines the unified interface for all data operations needed by the app.
// It is composed of smaller, domain-specific interfaces so consumers can depend on
// only what they use (e.g., the autosaver only needs the snapshot repositories).
type DataStore interface {
	CanvasRepository
	BoardRepository
	NoteRepository
	ActivityRepository

	Ping(ctx context.Context) error
	Close() error
}
