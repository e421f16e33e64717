package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/screen"
	"snake-arcade/ui/widget"

	"golang.org/x/exp/rand"
)

// Screens implements screen.Screens on top of a raylib window. Every loop
// draws a frame first and reads input after it, so a click that left the
// previous screen is never seen by the next one.
type Screens struct {
	ctx      *Context
	renderer *Renderer
	skins    *manager.SkinManager
	rng      *rand.Rand
}

var _ screen.Screens = (*Screens)(nil)

func NewScreens(ctx *Context, rng *rand.Rand) *Screens {
	return &Screens{
		ctx:      ctx,
		renderer: NewRenderer(ctx),
		skins:    manager.NewSkinManager(rng),
		rng:      rng,
	}
}

func (s *Screens) Title() screen.Result {
	start, skins := widget.TitleButtons(s.ctx.Width, s.ctx.Height)
	pointer := PollPointer()

	for {
		s.ctx.Frame(func() {
			s.renderer.DrawCenteredText("SNAKE GAME", s.ctx.Height/4, 48, types.Green)
			s.renderer.DrawButton(start, pointer)
			s.renderer.DrawButton(skins, pointer)
		})
		if s.ctx.ShouldQuit() {
			return screen.ToExit()
		}

		pointer = PollPointer()
		switch {
		case start.Clicked(pointer):
			return screen.ToGame()
		case skins.Clicked(pointer):
			return screen.ToSkins()
		}
	}
}

func (s *Screens) Skins() screen.Result {
	palette := s.skins.Palette(manager.PaletteSize)
	colors, back := widget.SkinButtons(s.ctx.Width, s.ctx.Height, palette)
	pointer := PollPointer()

	for {
		s.ctx.Frame(func() {
			s.renderer.DrawCenteredText("CHOOSE A SNAKE COLOR", s.ctx.Height/8, 36, types.White)
			s.renderer.DrawButton(back, pointer)
			for _, b := range colors {
				s.renderer.DrawButton(b, pointer)
			}
		})
		if s.ctx.ShouldQuit() {
			return screen.ToExit()
		}

		pointer = PollPointer()
		if back.Clicked(pointer) {
			return screen.ToTitle()
		}
		for i, b := range colors {
			if b.Clicked(pointer) {
				return screen.ToGameWithColor(palette[i])
			}
		}
	}
}

func (s *Screens) Game(color types.Color) screen.Result {
	session := game.NewSession(s.ctx.Grid, color, s.rng)

	for {
		s.ctx.Frame(func() {
			s.renderer.DrawGame(session)
		})
		if s.ctx.ShouldQuit() {
			return screen.ToExit()
		}

		session.Steer(PressedDirections()...)
		if session.Tick() {
			return screen.ToGameOver(session.Score())
		}
	}
}

func (s *Screens) GameOver(score int) screen.Result {
	again, quit := widget.GameOverButtons(s.ctx.Width, s.ctx.Height)
	scoreText := fmt.Sprintf("Score: %d", score)
	pointer := PollPointer()

	for {
		s.ctx.Frame(func() {
			s.renderer.DrawCenteredText("GAME OVER", s.ctx.Height/4, 48, types.Red)
			s.renderer.DrawCenteredText(scoreText, s.ctx.Height/3, 36, types.White)
			s.renderer.DrawButton(again, pointer)
			s.renderer.DrawButton(quit, pointer)
		})
		if s.ctx.ShouldQuit() {
			return screen.ToExit()
		}

		pointer = PollPointer()
		switch {
		case again.Clicked(pointer):
			return screen.ToGame()
		case quit.Clicked(pointer):
			return screen.ToExit()
		}
	}
}
