package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// NoteRepo persists note snapshots. Derived links are stored as computed so a
// restore does not depend on titles that may have changed since.
type NoteRepo struct {
	db *sql.DB
}

// SaveNotes replaces every stored note and collection in one transaction
func (r *NoteRepo) SaveNotes(ctx context.Context, snapshot models.NoteSnapshot) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := clearTables(ctx, tx, "collection_notes", "note_collections", "note_links", "note_tags", "notes")
		if err != nil {
			return err
		}

		for pos, n := range snapshot.Notes {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO notes (id, title, content, group_id, position, created_at, modified_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				n.ID, n.Title, n.Content, n.GroupID, pos,
				formatTime(n.CreatedAt), formatTime(n.ModifiedAt))
			if err != nil {
				return fmt.Errorf("failed to insert note %s: %w", n.ID, err)
			}
			err = insertOrdered(ctx, tx,
				`INSERT INTO note_tags (note_id, tag, position) VALUES (?, ?, ?)`,
				string(n.ID), n.Tags)
			if err != nil {
				return fmt.Errorf("failed to insert tags of note %s: %w", n.ID, err)
			}
			err = insertOrdered(ctx, tx,
				`INSERT INTO note_links (note_id, target_id, position) VALUES (?, ?, ?)`,
				string(n.ID), idStrings(n.LinkedNoteIDs))
			if err != nil {
				return fmt.Errorf("failed to insert links of note %s: %w", n.ID, err)
			}
		}

		for pos, c := range snapshot.Collections {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO note_collections (id, title, position, created_at, modified_at)
				 VALUES (?, ?, ?, ?, ?)`,
				c.ID, c.Title, pos, formatTime(c.CreatedAt), formatTime(c.ModifiedAt))
			if err != nil {
				return fmt.Errorf("failed to insert collection %s: %w", c.ID, err)
			}
			err = insertOrdered(ctx, tx,
				`INSERT INTO collection_notes (collection_id, note_id, position) VALUES (?, ?, ?)`,
				string(c.ID), idStrings(c.NoteIDs))
			if err != nil {
				return fmt.Errorf("failed to insert members of collection %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// LoadNotes reads the stored notes and collections in their saved order
func (r *NoteRepo) LoadNotes(ctx context.Context) (models.NoteSnapshot, error) {
	var snap models.NoteSnapshot

	tags, err := loadOrdered(ctx, r.db, `SELECT note_id, tag FROM note_tags ORDER BY note_id, position`)
	if err != nil {
		return snap, fmt.Errorf("failed to query note tags: %w", err)
	}
	links, err := loadOrdered(ctx, r.db, `SELECT note_id, target_id FROM note_links ORDER BY note_id, position`)
	if err != nil {
		return snap, fmt.Errorf("failed to query note links: %w", err)
	}
	members, err := loadOrdered(ctx, r.db,
		`SELECT collection_id, note_id FROM collection_notes ORDER BY collection_id, position`)
	if err != nil {
		return snap, fmt.Errorf("failed to query collection members: %w", err)
	}

	if snap.Notes, err = r.loadNoteRows(ctx, tags, links); err != nil {
		return snap, err
	}
	if snap.Collections, err = r.loadCollectionRows(ctx, members); err != nil {
		return snap, err
	}
	return snap, nil
}

func (r *NoteRepo) loadNoteRows(ctx context.Context, tags, links map[string][]string) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, group_id, created_at, modified_at FROM notes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		var (
			n                 models.Note
			created, modified string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.GroupID, &created, &modified); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if n.ModifiedAt, err = parseTime(modified); err != nil {
			return nil, err
		}
		n.Tags = tags[string(n.ID)]
		n.LinkedNoteIDs = toIDs[types.NoteID](links[string(n.ID)])
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NoteRepo) loadCollectionRows(ctx context.Context, members map[string][]string) ([]models.NoteCollection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, created_at, modified_at FROM note_collections ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var out []models.NoteCollection
	for rows.Next() {
		var (
			c                 models.NoteCollection
			created, modified string
		)
		if err := rows.Scan(&c.ID, &c.Title, &created, &modified); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if c.ModifiedAt, err = parseTime(modified); err != nil {
			return nil, err
		}
		c.NoteIDs = toIDs[types.NoteID](members[string(c.ID)])
		out = append(out, c)
	}
	return out, rows.Err()
}

func idStrings[T ~string](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func toIDs[T ~string](values []string) []T {
	if values == nil {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
