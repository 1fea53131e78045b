package canvas

import (
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// AddText places a text element and returns it, or nil for an unknown canvas
func (s *Store) AddText(canvasID types.CanvasID, text string, position models.Vector2, fontSize float64) *models.TextElement {
	e := models.NewTextElement(text, position, fontSize)
	if !s.AddElement(canvasID, e) {
		return nil
	}
	return e
}

// AddImage places an image element
func (s *Store) AddImage(canvasID types.CanvasID, path string, position, size models.Vector2) *models.ImageElement {
	e := models.NewImageElement(path, position, size)
	if !s.AddElement(canvasID, e) {
		return nil
	}
	return e
}

// AddNote places a sticky note
func (s *Store) AddNote(canvasID types.CanvasID, title, content string, position models.Vector2) *models.NoteElement {
	e := models.NewNoteElement(title, content, position)
	if !s.AddElement(canvasID, e) {
		return nil
	}
	return e
}

// AddShape places a shape
func (s *Store) AddShape(canvasID types.CanvasID, shape models.ShapeType, position, size models.Vector2, color models.Color) *models.ShapeElement {
	e := models.NewShapeElement(shape, position, size, color)
	if !s.AddElement(canvasID, e) {
		return nil
	}
	return e
}

// AddConnection links source to target. Both endpoints must already be on
// the canvas. The connection is complete when its created event fires.
func (s *Store) AddConnection(canvasID types.CanvasID, source, target types.ElementID, style models.LineStyle, arrow bool) *models.ConnectionElement {
	if s.GetElement(canvasID, source) == nil || s.GetElement(canvasID, target) == nil {
		return nil
	}
	e := models.NewConnectionElement(source, target, style)
	e.HasArrow = arrow
	if !s.AddElement(canvasID, e) {
		return nil
	}
	return e
}
