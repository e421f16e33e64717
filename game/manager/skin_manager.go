package manager

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

const (
	// PaletteSize is the number of colors offered on the skins screen.
	PaletteSize = 5

	minChannel = 50
)

// DefaultSkin is the snake color until the player picks one.
var DefaultSkin = types.Green

type SkinManager struct {
	rng *rand.Rand
}

func NewSkinManager(rng *rand.Rand) *SkinManager {
	return &SkinManager{rng: rng}
}

// Palette draws n random colors, every channel in [50, 255] so none is too
// dark to see on the black board.
func (sm *SkinManager) Palette(n int) []types.Color {
	colors := make([]types.Color, n)
	for i := range colors {
		colors[i] = types.Color{
			R: sm.channel(),
			G: sm.channel(),
			B: sm.channel(),
		}
	}
	return colors
}

func (sm *SkinManager) channel() uint8 {
	return uint8(minChannel + sm.rng.Intn(256-minChannel))
}
