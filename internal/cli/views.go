package cli

import (
	"time"

	"github.com/thenoetrevino/orion/internal/models"
)

// JSON views keep the wire shape of command output independent of the
// in-memory models

// CanvasView is the JSON form of a canvas
func CanvasView(c *models.Canvas) map[string]any {
	elements := make([]models.ElementRecord, len(c.Elements))
	for i, e := range c.Elements {
		elements[i] = models.ToRecord(e)
	}
	return map[string]any{
		"id":         c.ID,
		"title":      c.Title,
		"group_id":   c.GroupID,
		"size":       c.Size,
		"elements":   elements,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
}

// CanvasSummary is the JSON list form of a canvas
func CanvasSummary(c *models.Canvas) map[string]any {
	return map[string]any{
		"id":       c.ID,
		"title":    c.Title,
		"group_id": c.GroupID,
		"elements": len(c.Elements),
	}
}

// BoardView is the JSON form of a board with every column and card
func BoardView(b *models.KanbanBoard) map[string]any {
	columns := make([]map[string]any, len(b.Columns))
	for i, col := range b.Columns {
		columns[i] = ColumnView(col)
	}
	return map[string]any{
		"id":         b.ID,
		"title":      b.Title,
		"group_id":   b.GroupID,
		"members":    nonNil(b.MemberIDs),
		"columns":    columns,
		"created_at": b.CreatedAt,
		"updated_at": b.UpdatedAt,
	}
}

// BoardSummary is the JSON list form of a board
func BoardSummary(b *models.KanbanBoard) map[string]any {
	return map[string]any{
		"id":       b.ID,
		"title":    b.Title,
		"group_id": b.GroupID,
		"columns":  len(b.Columns),
		"cards":    b.CardCount(),
	}
}

// ColumnView is the JSON form of a column
func ColumnView(col *models.Column) map[string]any {
	cards := make([]map[string]any, len(col.Cards))
	for i, card := range col.Cards {
		cards[i] = CardView(card)
	}
	return map[string]any{
		"id":    col.ID,
		"title": col.Title,
		"cards": cards,
	}
}

// CardView is the JSON form of a card
func CardView(card *models.Card) map[string]any {
	var due *time.Time
	if card.DueDate != nil {
		d := *card.DueDate
		due = &d
	}
	return map[string]any{
		"id":          card.ID,
		"title":       card.Title,
		"description": card.Description,
		"assignees":   nonNil(card.AssigneeIDs),
		"tags":        nonNil(card.Tags),
		"due_date":    due,
		"created_at":  card.CreatedAt,
	}
}

// NoteView is the JSON form of a note
func NoteView(n *models.Note) map[string]any {
	return map[string]any{
		"id":          n.ID,
		"title":       n.Title,
		"content":     n.Content,
		"tags":        nonNil(n.Tags),
		"group_id":    n.GroupID,
		"links":       nonNil(n.LinkedNoteIDs),
		"created_at":  n.CreatedAt,
		"modified_at": n.ModifiedAt,
	}
}

// NoteViews maps NoteView over notes
func NoteViews(notes []*models.Note) []map[string]any {
	out := make([]map[string]any, len(notes))
	for i, n := range notes {
		out[i] = NoteView(n)
	}
	return out
}

// CollectionView is the JSON form of a note collection
func CollectionView(c *models.NoteCollection) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"title":       c.Title,
		"notes":       nonNil(c.NoteIDs),
		"created_at":  c.CreatedAt,
		"modified_at": c.ModifiedAt,
	}
}

// IDs converts typed ids to strings for quiet output
func IDs[T ~string](ids ...T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
