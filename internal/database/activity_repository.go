package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
)

// ActivityRepo records change events in the activity log
type ActivityRepo struct {
	db *sql.DB
}

// AppendActivity writes one event to the log
func (r *ActivityRepo) AppendActivity(ctx context.Context, event events.Event) error {
	related := event.Related
	if related == nil {
		related = []string{}
	}
	encoded, err := json.Marshal(related)
	if err != nil {
		return fmt.Errorf("failed to encode related ids: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO activity_log (sequence, event_type, entity, entity_id, parent_id, related, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.SequenceID, event.Type, event.Entity, event.EntityID, event.ParentID,
		string(encoded), formatTime(event.Timestamp))
	if err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

// SendEvent lets the activity log act as an events.Sink
func (r *ActivityRepo) SendEvent(event events.Event) error {
	return r.AppendActivity(context.Background(), event)
}

// RecentActivity returns up to limit entries, newest first
func (r *ActivityRepo) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, event_type, entity, entity_id, parent_id, related, occurred_at
		 FROM activity_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	var out []models.ActivityEntry
	for rows.Next() {
		var (
			e                   models.ActivityEntry
			related, occurredAt string
		)
		err := rows.Scan(&e.ID, &e.Sequence, &e.Type, &e.Entity, &e.EntityID, &e.ParentID, &related, &occurredAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(related), &e.Related); err != nil {
			return nil, fmt.Errorf("failed to decode related ids: %w", err)
		}
		if e.OccurredAt, err = parseTime(occurredAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Compile-time verification that *ActivityRepo implements events.Sink
var _ events.Sink = (*ActivityRepo)(nil)
