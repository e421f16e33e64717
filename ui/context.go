package ui

import (
	"errors"

	"snake-arcade/config"
	"snake-arcade/game/types"
	"snake-arcade/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrWindow = errors.New("failed to open window")

// Context is the window every screen draws into, and the clock that paces
// their loops. There is one per process.
type Context struct {
	Grid   types.Grid
	Width  int32
	Height int32
	FPS    int32
}

// NewContext opens the window. Close must be called before the process exits.
func NewContext(cfg config.Config) (*Context, error) {
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindow
	}
	rl.SetTargetFPS(int32(cfg.FPS))

	ctx := &Context{
		Grid:   cfg.Grid(),
		Width:  int32(cfg.ScreenWidth),
		Height: int32(cfg.ScreenHeight),
		FPS:    int32(cfg.FPS),
	}
	logger.Log.WithField("width", ctx.Width).
		WithField("height", ctx.Height).
		WithField("fps", ctx.FPS).
		Info("window opened")
	return ctx, nil
}

func (c *Context) Close() {
	rl.CloseWindow()
	logger.Log.Info("window closed")
}

// ShouldQuit is true once the window was asked to close.
func (c *Context) ShouldQuit() bool {
	return rl.WindowShouldClose()
}

// Frame clears the screen, runs draw and presents the result. It blocks until
// the next tick is due and refreshes the input state on the way out.
func (c *Context) Frame(draw func()) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	draw()
	rl.EndDrawing()
}
