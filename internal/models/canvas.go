package models

import (
	"time"

	"github.com/thenoetrevino/orion/internal/types"
)

// DefaultCanvasSize is the drawing surface of a new canvas
var DefaultCanvasSize = Vector2{X: 5000, Y: 5000}

// Canvas is a freeform diagram surface. Elements are kept in insertion
// order, which doubles as z-order.
type Canvas struct {
	ID        types.CanvasID
	Title     string
	GroupID   types.GroupID
	Elements  []Element
	Size      Vector2
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the canvas, elements included
func (c *Canvas) Clone() Canvas {
	out := *c
	out.Elements = make([]Element, len(c.Elements))
	for i, e := range c.Elements {
		out.Elements[i] = e.Clone()
	}
	return out
}

// ElementKind tags the variant of a canvas element
type ElementKind string

const (
	KindText       ElementKind = "text"
	KindImage      ElementKind = "image"
	KindNote       ElementKind = "note"
	KindShape      ElementKind = "shape"
	KindConnection ElementKind = "connection"
)

// Element is the closed set of things that can sit on a canvas:
// *TextElement, *ImageElement, *NoteElement, *ShapeElement and
// *ConnectionElement. The unexported method keeps the set sealed.
type Element interface {
	Base() *ElementBase
	Kind() ElementKind
	// Render hands the element to the painter method for its variant
	Render(p Painter)
	Clone() Element
	element()
}

// Painter is the rendering capability. The model only carries data; whoever
// draws a canvas implements one method per variant.
type Painter interface {
	PaintText(e *TextElement)
	PaintImage(e *ImageElement)
	PaintNote(e *NoteElement)
	PaintShape(e *ShapeElement)
	PaintConnection(e *ConnectionElement)
}

// ElementBase holds the fields every variant shares
type ElementBase struct {
	ID       types.ElementID
	Position Vector2
	Size     Vector2
	Rotation float64
	Color    Color
}

// Base exposes the shared fields for in-place edits
func (b *ElementBase) Base() *ElementBase { return b }

func (*ElementBase) element() {}

// Alignment anchors text inside its box
type Alignment string

const (
	AlignTopLeft      Alignment = "top-left"
	AlignMiddleCenter Alignment = "middle-center"
	AlignBottomRight  Alignment = "bottom-right"
)

// TextElement is free text placed on the canvas
type TextElement struct {
	ElementBase
	Text      string
	FontSize  float64
	Alignment Alignment
}

// NewTextElement builds a text element with the default box and font size
func NewTextElement(text string, position Vector2, fontSize float64) *TextElement {
	if fontSize <= 0 {
		fontSize = 14
	}
	return &TextElement{
		ElementBase: ElementBase{Position: position, Size: Vec(200, 100), Color: White},
		Text:        text,
		FontSize:    fontSize,
		Alignment:   AlignMiddleCenter,
	}
}

func (e *TextElement) Kind() ElementKind { return KindText }
func (e *TextElement) Render(p Painter)  { p.PaintText(e) }
func (e *TextElement) Clone() Element    { c := *e; return &c }

// ImageElement references an image file by path
type ImageElement struct {
	ElementBase
	ImagePath string
	TintColor Color
}

// NewImageElement builds an image element
func NewImageElement(path string, position, size Vector2) *ImageElement {
	return &ImageElement{
		ElementBase: ElementBase{Position: position, Size: size, Color: White},
		ImagePath:   path,
		TintColor:   White,
	}
}

func (e *ImageElement) Kind() ElementKind { return KindImage }
func (e *ImageElement) Render(p Painter)  { p.PaintImage(e) }
func (e *ImageElement) Clone() Element    { c := *e; return &c }

// NoteElement is a sticky note. It is unrelated to the notes store.
type NoteElement struct {
	ElementBase
	Title           string
	Content         string
	BackgroundColor Color
}

// NewNoteElement builds a sticky note with the default square size
func NewNoteElement(title, content string, position Vector2) *NoteElement {
	return &NoteElement{
		ElementBase:     ElementBase{Position: position, Size: Vec(200, 200), Color: White},
		Title:           title,
		Content:         content,
		BackgroundColor: StickyYellow,
	}
}

func (e *NoteElement) Kind() ElementKind { return KindNote }
func (e *NoteElement) Render(p Painter)  { p.PaintNote(e) }
func (e *NoteElement) Clone() Element    { c := *e; return &c }

// ShapeType enumerates the drawable shapes
type ShapeType string

const (
	ShapeRectangle ShapeType = "rectangle"
	ShapeCircle    ShapeType = "circle"
	ShapeTriangle  ShapeType = "triangle"
	ShapeHexagon   ShapeType = "hexagon"
	ShapeStar      ShapeType = "star"
)

// ParseShapeType maps a name to a ShapeType
func ParseShapeType(name string) (ShapeType, bool) {
	switch s := ShapeType(name); s {
	case ShapeRectangle, ShapeCircle, ShapeTriangle, ShapeHexagon, ShapeStar:
		return s, true
	}
	return "", false
}

// ShapeElement is a filled or outlined geometric shape
type ShapeElement struct {
	ElementBase
	Shape       ShapeType
	Filled      bool
	StrokeWidth float64
	StrokeColor Color
}

// NewShapeElement builds a filled shape with a black stroke
func NewShapeElement(shape ShapeType, position, size Vector2, color Color) *ShapeElement {
	if shape == "" {
		shape = ShapeRectangle
	}
	return &ShapeElement{
		ElementBase: ElementBase{Position: position, Size: size, Color: color},
		Shape:       shape,
		Filled:      true,
		StrokeWidth: 2,
		StrokeColor: Black,
	}
}

func (e *ShapeElement) Kind() ElementKind { return KindShape }
func (e *ShapeElement) Render(p Painter)  { p.PaintShape(e) }
func (e *ShapeElement) Clone() Element    { c := *e; return &c }

// LineStyle is how a connection is routed
type LineStyle string

const (
	LineStraight   LineStyle = "straight"
	LineCurved     LineStyle = "curved"
	LineOrthogonal LineStyle = "orthogonal"
)

// ParseLineStyle maps a name to a LineStyle
func ParseLineStyle(name string) (LineStyle, bool) {
	switch s := LineStyle(name); s {
	case LineStraight, LineCurved, LineOrthogonal:
		return s, true
	}
	return "", false
}

// ConnectionElement links two other elements. SourceID and TargetID are weak
// references: they name elements on the same canvas without owning them.
type ConnectionElement struct {
	ElementBase
	SourceID  types.ElementID
	TargetID  types.ElementID
	LineStyle LineStyle
	LineWidth float64
	HasArrow  bool
}

// NewConnectionElement builds a straight connection between two element ids
func NewConnectionElement(source, target types.ElementID, style LineStyle) *ConnectionElement {
	if style == "" {
		style = LineStraight
	}
	return &ConnectionElement{
		ElementBase: ElementBase{Color: White},
		SourceID:    source,
		TargetID:    target,
		LineStyle:   style,
		LineWidth:   2,
	}
}

func (e *ConnectionElement) Kind() ElementKind { return KindConnection }
func (e *ConnectionElement) Render(p Painter)  { p.PaintConnection(e) }
func (e *ConnectionElement) Clone() Element    { c := *e; return &c }

// References reports whether the connection points at id from either end
func (e *ConnectionElement) References(id types.ElementID) bool {
	return e.SourceID == id || e.TargetID == id
}
