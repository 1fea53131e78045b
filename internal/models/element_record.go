package models

import (
	"fmt"

	"github.com/thenoetrevino/orion/internal/types"
)

// ElementRecord is the flat, variant-tagged form of an Element used by the
// persistence collaborators. Fields that do not apply to Kind stay zero.
type ElementRecord struct {
	Kind     ElementKind     `json:"kind" cbor:"1,keyasint"`
	ID       types.ElementID `json:"id" cbor:"2,keyasint"`
	Position Vector2         `json:"position" cbor:"3,keyasint"`
	Size     Vector2         `json:"size" cbor:"4,keyasint"`
	Rotation float64         `json:"rotation,omitempty" cbor:"5,keyasint,omitempty"`
	Color    Color           `json:"color" cbor:"6,keyasint"`

	Text      string    `json:"text,omitempty" cbor:"10,keyasint,omitempty"`
	FontSize  float64   `json:"font_size,omitempty" cbor:"11,keyasint,omitempty"`
	Alignment Alignment `json:"alignment,omitempty" cbor:"12,keyasint,omitempty"`

	ImagePath string `json:"image_path,omitempty" cbor:"20,keyasint,omitempty"`
	TintColor Color  `json:"tint_color,omitempty" cbor:"21,keyasint,omitempty"`

	Title           string `json:"title,omitempty" cbor:"30,keyasint,omitempty"`
	Content         string `json:"content,omitempty" cbor:"31,keyasint,omitempty"`
	BackgroundColor Color  `json:"background_color,omitempty" cbor:"32,keyasint,omitempty"`

	Shape       ShapeType `json:"shape,omitempty" cbor:"40,keyasint,omitempty"`
	Filled      bool      `json:"filled,omitempty" cbor:"41,keyasint,omitempty"`
	StrokeWidth float64   `json:"stroke_width,omitempty" cbor:"42,keyasint,omitempty"`
	StrokeColor Color     `json:"stroke_color,omitempty" cbor:"43,keyasint,omitempty"`

	SourceID  types.ElementID `json:"source_id,omitempty" cbor:"50,keyasint,omitempty"`
	TargetID  types.ElementID `json:"target_id,omitempty" cbor:"51,keyasint,omitempty"`
	LineStyle LineStyle       `json:"line_style,omitempty" cbor:"52,keyasint,omitempty"`
	LineWidth float64         `json:"line_width,omitempty" cbor:"53,keyasint,omitempty"`
	HasArrow  bool            `json:"has_arrow,omitempty" cbor:"54,keyasint,omitempty"`
}

// ToRecord flattens an element
func ToRecord(e Element) ElementRecord {
	b := e.Base()
	r := ElementRecord{
		Kind:     e.Kind(),
		ID:       b.ID,
		Position: b.Position,
		Size:     b.Size,
		Rotation: b.Rotation,
		Color:    b.Color,
	}
	switch v := e.(type) {
	case *TextElement:
		r.Text, r.FontSize, r.Alignment = v.Text, v.FontSize, v.Alignment
	case *ImageElement:
		r.ImagePath, r.TintColor = v.ImagePath, v.TintColor
	case *NoteElement:
		r.Title, r.Content, r.BackgroundColor = v.Title, v.Content, v.BackgroundColor
	case *ShapeElement:
		r.Shape, r.Filled, r.StrokeWidth, r.StrokeColor = v.Shape, v.Filled, v.StrokeWidth, v.StrokeColor
	case *ConnectionElement:
		r.SourceID, r.TargetID = v.SourceID, v.TargetID
		r.LineStyle, r.LineWidth, r.HasArrow = v.LineStyle, v.LineWidth, v.HasArrow
	}
	return r
}

// FromRecord rebuilds the element variant named by r.Kind
func FromRecord(r ElementRecord) (Element, error) {
	base := ElementBase{
		ID:       r.ID,
		Position: r.Position,
		Size:     r.Size,
		Rotation: r.Rotation,
		Color:    r.Color,
	}
	switch r.Kind {
	case KindText:
		return &TextElement{ElementBase: base, Text: r.Text, FontSize: r.FontSize, Alignment: r.Alignment}, nil
	case KindImage:
		return &ImageElement{ElementBase: base, ImagePath: r.ImagePath, TintColor: r.TintColor}, nil
	case KindNote:
		return &NoteElement{ElementBase: base, Title: r.Title, Content: r.Content, BackgroundColor: r.BackgroundColor}, nil
	case KindShape:
		return &ShapeElement{
			ElementBase: base,
			Shape:       r.Shape,
			Filled:      r.Filled,
			StrokeWidth: r.StrokeWidth,
			StrokeColor: r.StrokeColor,
		}, nil
	case KindConnection:
		return &ConnectionElement{
			ElementBase: base,
			SourceID:    r.SourceID,
			TargetID:    r.TargetID,
			LineStyle:   r.LineStyle,
			LineWidth:   r.LineWidth,
			HasArrow:    r.HasArrow,
		}, nil
	default:
		return nil, fmt.Errorf("unknown element kind %q: %w", r.Kind, ErrInvalidArgument)
	}
}
