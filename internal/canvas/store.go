// Package canvas keeps freeform diagrams referentially consistent: a
// connection never outlives either element it points at.
package canvas

import (
	"slices"
	"time"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// Store owns every canvas and is the only way elements enter or leave one.
// It assumes a single writer and takes no locks.
type Store struct {
	canvases []*models.Canvas
	emitter  events.Emitter
	now      func() time.Time
}

// NewStore creates an empty store. A nil emitter discards events.
func NewStore(emitter events.Emitter) *Store {
	if emitter == nil {
		emitter = events.Discard
	}
	return &Store{emitter: emitter, now: time.Now}
}

// CreateCanvas creates an empty canvas owned by groupID (may be empty)
func (s *Store) CreateCanvas(title string, groupID types.GroupID) *models.Canvas {
	now := s.now()
	c := &models.Canvas{
		ID:        types.NewCanvasID(),
		Title:     title,
		GroupID:   groupID,
		Size:      models.DefaultCanvasSize,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.canvases = append(s.canvases, c)

	s.emit(events.EventCreated, events.EntityCanvas, c.ID.String(), "", nil)
	return c
}

// DeleteCanvas destroys a canvas and everything on it
func (s *Store) DeleteCanvas(id types.CanvasID) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.canvases = slices.Delete(s.canvases, i, i+1)

	s.emit(events.EventDeleted, events.EntityCanvas, id.String(), "", nil)
	return true
}

// Rename changes a canvas title
func (s *Store) Rename(id types.CanvasID, title string) bool {
	c := s.GetCanvas(id)
	if c == nil {
		return false
	}
	c.Title = title
	c.UpdatedAt = s.now()

	s.emit(events.EventUpdated, events.EntityCanvas, id.String(), "", nil)
	return true
}

// GetCanvas returns the live canvas or nil
func (s *Store) GetCanvas(id types.CanvasID) *models.Canvas {
	if i := s.indexOf(id); i >= 0 {
		return s.canvases[i]
	}
	return nil
}

// ListCanvases returns canvases in creation order
func (s *Store) ListCanvases() []*models.Canvas {
	return slices.Clone(s.canvases)
}

// ListByGroup returns the canvases recorded against groupID
func (s *Store) ListByGroup(groupID types.GroupID) []*models.Canvas {
	var out []*models.Canvas
	for _, c := range s.canvases {
		if c.GroupID == groupID {
			out = append(out, c)
		}
	}
	return out
}

// AddElement appends an element, assigning an id when it has none.
// A caller-supplied id is kept as is, so adding the same element value
// twice yields two entries.
func (s *Store) AddElement(canvasID types.CanvasID, element models.Element) bool {
	c := s.GetCanvas(canvasID)
	if c == nil || element == nil {
		return false
	}

	base := element.Base()
	if base.ID == "" {
		base.ID = types.NewElementID()
	}
	c.Elements = append(c.Elements, element)
	c.UpdatedAt = s.now()

	s.emit(events.EventCreated, events.EntityElement, base.ID.String(), canvasID.String(), nil)
	return true
}

// RemoveElement removes the element and, in the same step, every connection
// that references it. Returns false without touching the canvas when the id
// is not on it.
func (s *Store) RemoveElement(canvasID types.CanvasID, id types.ElementID) bool {
	c := s.GetCanvas(canvasID)
	if c == nil {
		return false
	}

	kept, cascaded, found := removeWithCascade(c.Elements, id)
	if !found {
		return false
	}
	c.Elements = kept
	c.UpdatedAt = s.now()

	related := make([]string, len(cascaded))
	for i, cid := range cascaded {
		related[i] = cid.String()
	}
	s.emit(events.EventDeleted, events.EntityElement, id.String(), canvasID.String(), related)
	return true
}

// GetElement returns the first element with id, or nil
func (s *Store) GetElement(canvasID types.CanvasID, id types.ElementID) models.Element {
	c := s.GetCanvas(canvasID)
	if c == nil {
		return nil
	}
	return findElement(c.Elements, id)
}

// GetConnections returns the connection elements of a canvas in z-order
func (s *Store) GetConnections(canvasID types.CanvasID) []*models.ConnectionElement {
	c := s.GetCanvas(canvasID)
	if c == nil {
		return nil
	}
	return connections(c.Elements)
}

// UpdateElementPosition moves an element
func (s *Store) UpdateElementPosition(canvasID types.CanvasID, id types.ElementID, position models.Vector2) bool {
	return s.updateElement(canvasID, id, func(b *models.ElementBase) { b.Position = position })
}

// UpdateElementSize resizes an element
func (s *Store) UpdateElementSize(canvasID types.CanvasID, id types.ElementID, size models.Vector2) bool {
	return s.updateElement(canvasID, id, func(b *models.ElementBase) { b.Size = size })
}

func (s *Store) updateElement(canvasID types.CanvasID, id types.ElementID, apply func(*models.ElementBase)) bool {
	c := s.GetCanvas(canvasID)
	if c == nil {
		return false
	}
	e := findElement(c.Elements, id)
	if e == nil {
		return false
	}
	apply(e.Base())
	c.UpdatedAt = s.now()

	s.emit(events.EventUpdated, events.EntityElement, id.String(), canvasID.String(), nil)
	return true
}

// Snapshot returns a deep copy of every canvas. The copy shares nothing with
// the store and is safe to hand to another goroutine.
func (s *Store) Snapshot() []models.Canvas {
	out := make([]models.Canvas, len(s.canvases))
	for i, c := range s.canvases {
		out[i] = c.Clone()
	}
	return out
}

// Restore replaces the store contents with a copy of records. Loading is not
// a user mutation, so no events fire. Connections whose endpoints are missing
// are dropped and their ids returned.
func (s *Store) Restore(records []models.Canvas) (pruned []types.ElementID) {
	s.canvases = make([]*models.Canvas, len(records))
	for i := range records {
		c := records[i].Clone()
		pruned = append(pruned, pruneDangling(&c)...)
		s.canvases[i] = &c
	}
	return pruned
}

func (s *Store) indexOf(id types.CanvasID) int {
	return slices.IndexFunc(s.canvases, func(c *models.Canvas) bool { return c.ID == id })
}

func (s *Store) emit(typ events.EventType, entity events.Entity, id, parent string, related []string) {
	s.emitter.Emit(events.Event{
		Type:     typ,
		Entity:   entity,
		EntityID: id,
		ParentID: parent,
		Related:  related,
	})
}
