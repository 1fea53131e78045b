package models

import "fmt"

// Vector2 is a position or size on a canvas
type Vector2 struct {
	X float64 `json:"x" cbor:"1,keyasint"`
	Y float64 `json:"y" cbor:"2,keyasint"`
}

// Vec is shorthand for building a Vector2
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Color is an RGBA color with channels in [0, 1]
type Color struct {
	R float64 `json:"r" cbor:"1,keyasint"`
	G float64 `json:"g" cbor:"2,keyasint"`
	B float64 `json:"b" cbor:"3,keyasint"`
	A float64 `json:"a" cbor:"4,keyasint"`
}

var (
	White        = Color{R: 1, G: 1, B: 1, A: 1}
	Black        = Color{R: 0, G: 0, B: 0, A: 1}
	StickyYellow = Color{R: 1, G: 0.92, B: 0.23, A: 1}
)

// Hex formats the color as #RRGGBB, dropping alpha
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
