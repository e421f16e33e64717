package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fillSnake covers the first n cells of grid, row by row.
func fillSnake(grid types.Grid, n int) *entity.Snake {
	s := entity.NewSnake(types.Point{}, types.Green)
	s.Body = s.Body[:0]
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, types.Point{X: i % grid.Width, Y: i / grid.Width})
	}
	return s
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.NewGrid(10, 10, types.DefaultCellSize)
	fm := NewFoodManager(grid, newRand(42), NewCollisionManager(grid))

	for _, length := range []int{1, 10, 50, 90, 98} {
		snake := fillSnake(grid, length)
		for i := 0; i < 200; i++ {
			food, ok := fm.GenerateFood(snake)
			require.True(t, ok)
			require.True(t, grid.Contains(food), "%v off the board", food)
			require.False(t, snake.Occupies(food), "length %d: food on snake at %v", length, food)
		}
	}
}

func TestGenerateFoodCrowdedBoard(t *testing.T) {
	grid := types.NewGrid(3, 3, types.DefaultCellSize)
	fm := NewFoodManager(grid, newRand(7), NewCollisionManager(grid))

	t.Run("one cell left", func(t *testing.T) {
		snake := fillSnake(grid, 8)
		food, ok := fm.GenerateFood(snake)
		require.True(t, ok)
		assert.Equal(t, types.Point{X: 2, Y: 2}, food)
	})

	t.Run("board full", func(t *testing.T) {
		_, ok := fm.GenerateFood(fillSnake(grid, 9))
		assert.False(t, ok)
	})
}

func TestFreeCells(t *testing.T) {
	grid := types.NewGrid(2, 2, types.DefaultCellSize)
	cm := NewCollisionManager(grid)

	snake := fillSnake(grid, 3)
	assert.Equal(t, []types.Point{{X: 1, Y: 1}}, cm.FreeCells(snake))
	assert.Len(t, cm.FreeCells(nil), 4)
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 2, Y: 0}, nil))
}

func TestPalette(t *testing.T) {
	sm := NewSkinManager(newRand(1))

	palette := sm.Palette(PaletteSize)
	require.Len(t, palette, PaletteSize)

	for i := 0; i < 100; i++ {
		for _, c := range sm.Palette(PaletteSize) {
			for _, ch := range []uint8{c.R, c.G, c.B} {
				assert.GreaterOrEqual(t, ch, uint8(minChannel))
			}
		}
	}
}
