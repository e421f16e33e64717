// Package screen drives the game from one screen to the next.
//
// Every screen runs its own loop until the player does something that leaves
// it, then hands back a Result naming the next screen and what it carries.
package screen

import (
	"snake-arcade/game/types"
)

// State names a screen.
type State int

const (
	Title State = iota
	Game
	Skins
	GameOver
	Exit
)

func (s State) String() string {
	switch s {
	case Title:
		return "title"
	case Game:
		return "game"
	case Skins:
		return "skins"
	case GameOver:
		return "game_over"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Result is what a screen returns: the next state and its payload. Only a
// Skins -> Game result carries a color and only a GameOver result carries a
// score.
type Result struct {
	Next  State
	Score int

	color    types.Color
	hasColor bool
}

func ToTitle() Result { return Result{Next: Title} }
func ToSkins() Result { return Result{Next: Skins} }
func ToGame() Result  { return Result{Next: Game} }
func ToExit() Result  { return Result{Next: Exit} }

// ToGameWithColor starts a game with a newly chosen snake color.
func ToGameWithColor(c types.Color) Result {
	return Result{Next: Game, color: c, hasColor: true}
}

// ToGameOver ends a game with its final score.
func ToGameOver(score int) Result {
	return Result{Next: GameOver, Score: score}
}

// Color returns the chosen color, if the result carries one.
func (r Result) Color() (types.Color, bool) {
	return r.color, r.hasColor
}

// Screens runs the loop of each screen. Each call blocks until the screen is
// left.
type Screens interface {
	Title() Result
	Skins() Result
	Game(color types.Color) Result
	GameOver(score int) Result
}
