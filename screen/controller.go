package screen

import (
	"errors"
	"fmt"

	"snake-arcade/game/types"
	"snake-arcade/logger"
)

var (
	ErrUnknownState  = errors.New("unknown screen state")
	ErrBadTransition = errors.New("screen transition not allowed")
)

// transitions lists where each screen may go. Exit is reachable from anywhere
// since closing the window quits from any screen.
var transitions = map[State][]State{
	Title:    {Game, Skins},
	Skins:    {Game, Title},
	Game:     {GameOver},
	GameOver: {Game},
}

func allowed(from, to State) bool {
	if to == Exit {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Controller is the top-level loop. It owns the snake color chosen on the
// skins screen and the score handed from a game to the game over screen.
type Controller struct {
	color types.Color
	score int
}

func NewController(color types.Color) *Controller {
	return &Controller{color: color}
}

// Color is the snake color the next game starts with.
func (c *Controller) Color() types.Color {
	return c.color
}

// Run dispatches screens starting from Title until one returns Exit.
func (c *Controller) Run(screens Screens) error {
	current := Title
	for {
		var res Result
		switch current {
		case Title:
			res = screens.Title()
		case Skins:
			res = screens.Skins()
		case Game:
			res = screens.Game(c.color)
		case GameOver:
			res = screens.GameOver(c.score)
		default:
			return fmt.Errorf("%w: %d", ErrUnknownState, current)
		}

		if !allowed(current, res.Next) {
			return fmt.Errorf("%w: %s -> %s", ErrBadTransition, current, res.Next)
		}
		if color, ok := res.Color(); ok {
			c.color = color
		}
		if res.Next == GameOver {
			c.score = res.Score
		}

		logger.Log.WithField("from", current.String()).
			WithField("to", res.Next.String()).
			Debug("screen transition")

		if res.Next == Exit {
			return nil
		}
		current = res.Next
	}
}
