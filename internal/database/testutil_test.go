package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orion-test.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { newDB.Close() })
	return newDB
}

// countRows returns the number of rows in table
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// ============================================================================
// FIXTURES
// ============================================================================

var fixtureTime = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

func testCanvas() models.Canvas {
	text := models.NewTextElement("hello", models.Vec(10, 20), 0)
	text.ID = "el-text"
	shape := models.NewShapeElement(models.ShapeHexagon, models.Vec(300, 40), models.Vec(80, 80), models.StickyYellow)
	shape.ID = "el-shape"
	shape.Rotation = 45
	conn := models.NewConnectionElement(text.ID, shape.ID, models.LineCurved)
	conn.ID = "el-conn"
	conn.HasArrow = true

	return models.Canvas{
		ID:        "canvas-1",
		Title:     "Architecture",
		GroupID:   "platform",
		Elements:  []models.Element{text, shape, conn},
		Size:      models.DefaultCanvasSize,
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime.Add(time.Minute),
	}
}

func testBoard() models.KanbanBoard {
	due := fixtureTime.Add(48 * time.Hour)
	return models.KanbanBoard{
		ID:        "board-1",
		Title:     "Sprint 1",
		GroupID:   "platform",
		MemberIDs: []string{"alice", "bob"},
		Columns: []*models.Column{
			{ID: "col-todo", Title: "To Do", Cards: []*models.Card{
				{ID: "card-a", Title: "A", CreatedAt: fixtureTime, Tags: []string{"bug", "ui"}},
				{ID: "card-b", Title: "B", Description: "second", CreatedAt: fixtureTime, DueDate: &due},
			}},
			{ID: "col-doing", Title: "In Progress", Cards: []*models.Card{
				{ID: "card-c", Title: "C", CreatedAt: fixtureTime, AssigneeIDs: []string{"bob"}},
			}},
			{ID: "col-done", Title: "Done"},
		},
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
}

func testNotes() models.NoteSnapshot {
	return models.NoteSnapshot{
		Notes: []models.Note{
			{ID: "note-b", Title: "Beta", Content: "plain", CreatedAt: fixtureTime, ModifiedAt: fixtureTime},
			{
				ID:            "note-a",
				Title:         "Alpha",
				Content:       "see [[Beta]] and [[Gone]]",
				Tags:          []string{"idea"},
				GroupID:       "research",
				CreatedAt:     fixtureTime,
				ModifiedAt:    fixtureTime.Add(time.Second),
				LinkedNoteIDs: []types.NoteID{"note-b", "note-deleted"},
			},
		},
		Collections: []models.NoteCollection{
			{ID: "coll-1", Title: "Reading", NoteIDs: []types.NoteID{"note-a", "note-b"}, CreatedAt: fixtureTime, ModifiedAt: fixtureTime},
		},
	}
}
