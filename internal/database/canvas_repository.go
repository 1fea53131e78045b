package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// CanvasRepo persists canvas snapshots
type CanvasRepo struct {
	db *sql.DB
}

// SaveCanvases replaces every stored canvas with snapshot in one transaction.
// Elements are stored as variant-tagged JSON in z-order.
func (r *CanvasRepo) SaveCanvases(ctx context.Context, snapshot []models.Canvas) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := clearTables(ctx, tx, "canvas_elements", "canvases"); err != nil {
			return err
		}

		for pos, c := range snapshot {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO canvases (id, title, group_id, width, height, position, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID, c.Title, c.GroupID, c.Size.X, c.Size.Y, pos,
				formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
			if err != nil {
				return fmt.Errorf("failed to insert canvas %s: %w", c.ID, err)
			}

			for i, e := range c.Elements {
				attrs, err := json.Marshal(models.ToRecord(e))
				if err != nil {
					return fmt.Errorf("failed to encode element %s: %w", e.Base().ID, err)
				}
				_, err = tx.ExecContext(ctx,
					`INSERT INTO canvas_elements (canvas_id, position, element_id, kind, attributes)
					 VALUES (?, ?, ?, ?, ?)`,
					c.ID, i, e.Base().ID, e.Kind(), string(attrs))
				if err != nil {
					return fmt.Errorf("failed to insert element %s: %w", e.Base().ID, err)
				}
			}
		}
		return nil
	})
}

// LoadCanvases reads every stored canvas in its saved order
func (r *CanvasRepo) LoadCanvases(ctx context.Context) ([]models.Canvas, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, group_id, width, height, created_at, updated_at
		 FROM canvases ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query canvases: %w", err)
	}
	defer rows.Close()

	var out []models.Canvas
	index := make(map[types.CanvasID]int)
	for rows.Next() {
		var (
			c                models.Canvas
			created, updated string
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.GroupID, &c.Size.X, &c.Size.Y, &created, &updated); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	elems, err := r.db.QueryContext(ctx,
		`SELECT canvas_id, attributes FROM canvas_elements ORDER BY canvas_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query canvas elements: %w", err)
	}
	defer elems.Close()

	for elems.Next() {
		var (
			canvasID types.CanvasID
			attrs    string
		)
		if err := elems.Scan(&canvasID, &attrs); err != nil {
			return nil, err
		}
		var rec models.ElementRecord
		if err := json.Unmarshal([]byte(attrs), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode element on canvas %s: %w", canvasID, err)
		}
		e, err := models.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		i, ok := index[canvasID]
		if !ok {
			continue
		}
		out[i].Elements = append(out[i].Elements, e)
	}
	return out, elems.Err()
}
