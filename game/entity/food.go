package entity

import (
	"snake-arcade/game/types"
)

type Food struct {
	Position types.Point
	Color    types.Color
}

func NewFood(pos types.Point) *Food {
	return &Food{
		Position: pos,
		Color:    types.Red,
	}
}

// MoveTo places the food on a new cell.
func (f *Food) MoveTo(pos types.Point) {
	f.Position = pos
}
