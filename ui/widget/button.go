// Package widget holds the menu buttons as plain values. Screens rebuild them
// on entry; nothing about a button outlives its screen.
package widget

import (
	"snake-arcade/game/types"
)

const (
	ButtonWidth  = 200
	ButtonHeight = 50
	// HoverLift is how much lighter a skin button gets under the mouse.
	HoverLift = 50
)

type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Contains reports whether the pixel (x, y) is inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= float32(r.X) && x < float32(r.X+r.Width) &&
		y >= float32(r.Y) && y < float32(r.Y+r.Height)
}

func (r Rect) Center() (int32, int32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y    float32
	Pressed bool // left button went down this frame
}

type Button struct {
	Rect       Rect
	Label      string
	Color      types.Color
	HoverColor types.Color
}

func NewButton(x, y int32, label string, color, hover types.Color) Button {
	return Button{
		Rect:       Rect{X: x, Y: y, Width: ButtonWidth, Height: ButtonHeight},
		Label:      label,
		Color:      color,
		HoverColor: hover,
	}
}

func (b Button) Hovered(p Pointer) bool {
	return b.Rect.Contains(p.X, p.Y)
}

// Fill is the color to paint the button with under pointer p.
func (b Button) Fill(p Pointer) types.Color {
	if b.Hovered(p) {
		return b.HoverColor
	}
	return b.Color
}

func (b Button) Clicked(p Pointer) bool {
	return p.Pressed && b.Hovered(p)
}
