package entity

import (
	"testing"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid30 = types.NewGrid(30, 30, types.DefaultCellSize)

// noFood is a cell the tests never reach.
var noFood = types.Point{X: -1, Y: -1}

func snakeWithBody(dir types.Direction, body ...types.Point) *Snake {
	s := NewSnake(body[0], types.Green)
	s.Body = append([]types.Point(nil), body...)
	s.Direction = dir
	s.Pending = dir
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(grid30.Center(), types.Green)

	assert.Equal(t, []types.Point{{X: 15, Y: 15}}, s.Body)
	assert.Equal(t, types.Right, s.Direction)
	assert.Equal(t, types.Right, s.Pending)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Len())
}

func TestStepWithoutInput(t *testing.T) {
	s := NewSnake(grid30.Center(), types.Green)

	for i := 0; i < 5; i++ {
		require.Equal(t, Moved, s.Step(grid30, noFood))
	}

	assert.Equal(t, types.Point{X: 20, Y: 15}, s.Head())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Score)
}

func TestStepEatsFood(t *testing.T) {
	s := snakeWithBody(types.Right,
		types.Point{X: 5, Y: 5}, types.Point{X: 4, Y: 5}, types.Point{X: 3, Y: 5})

	result := s.Step(grid30, types.Point{X: 6, Y: 5})

	assert.Equal(t, Ate, result)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Body[:3])

	// next tick without food keeps the new length
	assert.Equal(t, Moved, s.Step(grid30, noFood))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 1, s.Score)
}

func TestStepNoCollisionAhead(t *testing.T) {
	s := snakeWithBody(types.Right,
		types.Point{X: 12, Y: 10}, types.Point{X: 11, Y: 10}, types.Point{X: 10, Y: 10})

	assert.Equal(t, Moved, s.Step(grid30, noFood))
	assert.Equal(t, []types.Point{{X: 13, Y: 10}, {X: 12, Y: 10}, {X: 11, Y: 10}}, s.Body)
}

func TestStepSelfCollision(t *testing.T) {
	// A hook: head at (5,5) moving up into (5,4), which is body.
	body := []types.Point{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 4},
	}
	s := snakeWithBody(types.Left, body...)
	require.True(t, s.SetDirection(types.Up))

	result := s.Step(grid30, noFood)

	assert.Equal(t, Collided, result)
	assert.Equal(t, body, s.Body, "body must not change on collision")
	assert.Equal(t, 0, s.Score)
}

func TestStepWrapsAround(t *testing.T) {
	s := snakeWithBody(types.Right, types.Point{X: 29, Y: 0})
	require.True(t, s.SetDirection(types.Up))

	assert.Equal(t, Moved, s.Step(grid30, noFood))
	assert.Equal(t, types.Point{X: 29, Y: 29}, s.Head())

	s.SetDirection(types.Right)
	assert.Equal(t, Moved, s.Step(grid30, noFood))
	assert.Equal(t, types.Point{X: 0, Y: 29}, s.Head())
}

func TestBodyStaysInBounds(t *testing.T) {
	small := types.NewGrid(7, 5, types.DefaultCellSize)
	s := NewSnake(small.Center(), types.Green)
	turns := []types.Direction{types.Down, types.Right, types.Up, types.Right, types.Down}

	food := types.Point{X: 4, Y: 3}
	for tick := 0; tick < 200; tick++ {
		s.SetDirection(turns[(tick/9)%len(turns)])
		if s.Step(small, food) == Ate {
			food = types.Point{X: (food.X + 3) % small.Width, Y: (food.Y + 2) % small.Height}
		}
		for _, p := range s.Body {
			require.True(t, small.Contains(p), "tick %d: %v out of bounds", tick, p)
		}
	}
}

func TestSetDirection(t *testing.T) {
	t.Run("reverse is rejected", func(t *testing.T) {
		s := NewSnake(grid30.Center(), types.Green)

		assert.False(t, s.SetDirection(types.Left))
		assert.Equal(t, types.Right, s.Pending)
	})

	t.Run("turn is latched until the next step", func(t *testing.T) {
		s := NewSnake(grid30.Center(), types.Green)

		assert.True(t, s.SetDirection(types.Up))
		assert.Equal(t, types.Up, s.Pending)
		assert.Equal(t, types.Right, s.Direction)

		s.Step(grid30, noFood)
		assert.Equal(t, types.Up, s.Direction)
		assert.Equal(t, types.Point{X: 15, Y: 14}, s.Head())
	})

	t.Run("reverse is judged against the current direction", func(t *testing.T) {
		s := NewSnake(grid30.Center(), types.Green)

		assert.True(t, s.SetDirection(types.Up))
		// Down is the reverse of the pending Up but not of the current Right
		assert.True(t, s.SetDirection(types.Down))
		assert.Equal(t, types.Down, s.Pending)
	})

	t.Run("none is ignored", func(t *testing.T) {
		s := NewSnake(grid30.Center(), types.Green)
		assert.False(t, s.SetDirection(types.None))
		assert.Equal(t, types.Right, s.Pending)
	})
}

func TestOccupies(t *testing.T) {
	s := snakeWithBody(types.Right, types.Point{X: 2, Y: 2}, types.Point{X: 1, Y: 2})
	assert.True(t, s.Occupies(types.Point{X: 2, Y: 2}))
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 2}))
	assert.False(t, s.Occupies(types.Point{X: 3, Y: 2}))
}

func TestStepResultString(t *testing.T) {
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "ate", Ate.String())
	assert.Equal(t, "collided", Collided.String())
}
