package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start. Every statement is idempotent.
//
// Ordered collections carry an explicit position column. note_links and
// collection_notes hold bare note ids without foreign keys: a link may name a
// note that has since been deleted.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS canvases (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		group_id TEXT NOT NULL DEFAULT '',
		width REAL NOT NULL,
		height REAL NOT NULL,
		position INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS canvas_elements (
		canvas_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		element_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		attributes TEXT NOT NULL,
		PRIMARY KEY (canvas_id, position),
		FOREIGN KEY (canvas_id) REFERENCES canvases(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		group_id TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS board_members (
		board_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (board_id, user_id),
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS board_columns (
		id TEXT PRIMARY KEY,
		board_id TEXT NOT NULL,
		title TEXT NOT NULL,
		position INTEGER NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		column_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		due_date TEXT,
		FOREIGN KEY (column_id) REFERENCES board_columns(id) ON DELETE CASCADE,
		UNIQUE (column_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS card_assignees (
		card_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (card_id, user_id),
		FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS card_tags (
		card_id TEXT NOT NULL,
		tag TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (card_id, tag),
		FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		group_id TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		modified_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS note_tags (
		note_id TEXT NOT NULL,
		tag TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (note_id, tag),
		FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS note_links (
		note_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (note_id, position),
		FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS note_collections (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		modified_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS collection_notes (
		collection_id TEXT NOT NULL,
		note_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (collection_id, position),
		FOREIGN KEY (collection_id) REFERENCES note_collections(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		entity TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		parent_id TEXT NOT NULL DEFAULT '',
		related TEXT NOT NULL DEFAULT '[]',
		occurred_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_entity ON activity_log(entity, entity_id)`,
}

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d: %w", i, err)
			}
		}
		return nil
	})
}
