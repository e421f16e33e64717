package ui

import (
	"snake-arcade/game/types"
	"snake-arcade/ui/widget"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
}

// PressedDirections drains this frame's key queue and returns the direction
// keys in the order they were pressed.
func PressedDirections() []types.Direction {
	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := keyDirections[key]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func PollPointer() widget.Pointer {
	pos := rl.GetMousePosition()
	return widget.Pointer{
		X:       pos.X,
		Y:       pos.Y,
		Pressed: rl.IsMouseButtonPressed(rl.MouseLeftButton),
	}
}
