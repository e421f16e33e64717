package widget

import (
	"fmt"

	"snake-arcade/game/types"
)

// Menus are laid out on a centered column of buttons.
func column(screenWidth int32) int32 {
	return screenWidth/2 - ButtonWidth/2
}

// TitleButtons returns the START and SKINS buttons.
func TitleButtons(screenWidth, screenHeight int32) (start, skins Button) {
	x := column(screenWidth)
	start = NewButton(x, screenHeight/2-ButtonHeight/2, "START", types.Green, types.LightGray)
	skins = NewButton(x, screenHeight/2+50, "SKINS", types.Green, types.LightGray)
	return start, skins
}

// SkinButtons returns one button per palette color, stacked from a quarter of
// the screen down, and the BACK button near the bottom.
func SkinButtons(screenWidth, screenHeight int32, palette []types.Color) (colors []Button, back Button) {
	x := column(screenWidth)
	colors = make([]Button, len(palette))
	for i, c := range palette {
		label := fmt.Sprintf("Color %d", i+1)
		colors[i] = NewButton(x, screenHeight/4+int32(i)*70, label, c, c.Lighten(HoverLift))
	}
	back = NewButton(x, screenHeight-100, "BACK", types.Gray, types.LightGray)
	return colors, back
}

// GameOverButtons returns the PLAY AGAIN and QUIT buttons.
func GameOverButtons(screenWidth, screenHeight int32) (again, quit Button) {
	x := column(screenWidth)
	again = NewButton(x, screenHeight/2, "PLAY AGAIN", types.Green, types.LightGray)
	quit = NewButton(x, screenHeight/2+70, "QUIT", types.Red, types.LightGray)
	return again, quit
}
