package entity

import (
	"snake-arcade/game/types"
)

// StepResult is the outcome of moving the snake by one cell.
type StepResult int

const (
	Moved    StepResult = iota // length unchanged
	Ate                        // grew by one, score +1
	Collided                   // head ran into the body; nothing changed
)

func (r StepResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

type Snake struct {
	Body      []types.Point // Body[0] is the head
	Direction types.Direction
	Pending   types.Direction // applied on the next Step
	Score     int
	Color     types.Color
}

func NewSnake(startPos types.Point, color types.Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Right, // Start moving right
		Pending:   types.Right,
		Score:     0,
		Color:     color,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell, head included, is at p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection latches dir for the next Step. A turn back onto the current
// direction is ignored.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// NextHead is where the head lands on the next Step.
func (s *Snake) NextHead(grid types.Grid) types.Point {
	return grid.Wrap(s.Head().Add(s.Pending.Vector()))
}

// Step advances the snake one cell in the pending direction. The tail stays in
// place when the new head lands on food.
func (s *Snake) Step(grid types.Grid, food types.Point) StepResult {
	newHead := s.NextHead(grid)

	// Check self collision, skipping the head
	for _, part := range s.Body[1:] {
		if part == newHead {
			return Collided
		}
	}

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
	s.Direction = s.Pending

	if newHead == food {
		s.Score++
		return Ate
	}

	// Remove tail if no food was eaten
	s.Body = s.Body[:len(s.Body)-1]
	return Moved
}
