package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	scoreFontSize  = 20
	buttonFontSize = 24
	headLift       = 60 // head is drawn this much lighter than the body
)

// Renderer draws screens into the current frame. It only reads the state it
// is given.
type Renderer struct {
	ctx *Context
}

func NewRenderer(ctx *Context) *Renderer {
	return &Renderer{ctx: ctx}
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// DrawGame draws the board, the snake, the food and the score.
func (r *Renderer) DrawGame(s *game.Session) {
	grid := s.Grid
	cell := int32(grid.CellSize)

	// Draw grid lines
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			px, py := grid.ToPixel(types.Point{X: x, Y: y})
			rl.DrawRectangleLines(px, py, cell, cell, toRL(types.Gray))
		}
	}

	// Draw snake tail to head so the head ends on top
	snake := s.Snake
	for i := len(snake.Body) - 1; i >= 0; i-- {
		px, py := grid.ToPixel(snake.Body[i])
		color := snake.Color
		if i == 0 {
			color = color.Lighten(headLift)
		}
		rl.DrawRectangle(px, py, cell, cell, toRL(color))
		rl.DrawRectangleLines(px, py, cell, cell, rl.Black)
	}
	r.drawHeading(grid, snake.Head(), snake.Direction)

	// Draw food
	fx, fy := grid.ToPixel(s.Food.Position)
	rl.DrawRectangle(fx, fy, cell, cell, toRL(s.Food.Color))
	rl.DrawRectangleLines(fx, fy, cell, cell, rl.Black)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score()), 10, 10, scoreFontSize, rl.White)
}

// drawHeading draws a triangle on the head pointing where the snake goes.
func (r *Renderer) drawHeading(grid types.Grid, head types.Point, dir types.Direction) {
	headX, headY := grid.ToPixel(head)
	x, y := float32(headX), float32(headY)
	cell := float32(grid.CellSize)
	half := cell / 2

	// Vertices are counter-clockwise, as raylib expects
	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: x + cell, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y}
		c = rl.Vector2{X: x + half, Y: y + cell}
	case types.Left:
		a = rl.Vector2{X: x, Y: y + half}
		b = rl.Vector2{X: x + half, Y: y + cell}
		c = rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a = rl.Vector2{X: x + half, Y: y + cell}
		b = rl.Vector2{X: x + cell, Y: y + half}
		c = rl.Vector2{X: x, Y: y + half}
	default: // Up
		a = rl.Vector2{X: x + half, Y: y}
		b = rl.Vector2{X: x, Y: y + half}
		c = rl.Vector2{X: x + cell, Y: y + half}
	}
	rl.DrawTriangle(a, b, c, rl.Black)
}

// DrawCenteredText draws text horizontally centered with its middle at y.
func (r *Renderer) DrawCenteredText(text string, y, fontSize int32, color types.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.ctx.Width-width)/2, y-fontSize/2, fontSize, toRL(color))
}

// DrawButton draws b, lit up when the pointer is over it.
func (r *Renderer) DrawButton(b widget.Button, p widget.Pointer) {
	rect := b.Rect
	rl.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height, toRL(b.Fill(p)))
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(rect.X),
		Y:      float32(rect.Y),
		Width:  float32(rect.Width),
		Height: float32(rect.Height),
	}, 2, rl.Black)

	cx, cy := rect.Center()
	width := rl.MeasureText(b.Label, buttonFontSize)
	rl.DrawText(b.Label, cx-width/2, cy-buttonFontSize/2, buttonFontSize, rl.Black)
}
