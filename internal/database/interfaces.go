// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
)

// CanvasRepository stores canvas snapshots
type CanvasRepository interface {
	SaveCanvases(ctx context.Context, snapshot []models.Canvas) error
	LoadCanvases(ctx context.Context) ([]models.Canvas, error)
}

// BoardRepository stores kanban board snapshots
type BoardRepository interface {
	SaveBoards(ctx context.Context, snapshot []models.KanbanBoard) error
	LoadBoards(ctx context.Context) ([]models.KanbanBoard, error)
}

// NoteRepository stores note snapshots
type NoteRepository interface {
	SaveNotes(ctx context.Context, snapshot models.NoteSnapshot) error
	LoadNotes(ctx context.Context) (models.NoteSnapshot, error)
}

// ActivityRepository is the append-only change log
type ActivityRepository interface {
	events.Sink
	AppendActivity(ctx context.Context, event events.Event) error
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
