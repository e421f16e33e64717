package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Session is one play-through: from a fresh length-1 snake to its first
// collision.
type Session struct {
	UUID      string
	Grid      types.Grid
	Snake     *entity.Snake
	Food      *entity.Food
	Steps     int
	StartTime time.Time
	Over      bool

	foodManager *manager.FoodManager
	log         *logrus.Entry
}

// NewSession starts a game on grid with a snake of the given color at the
// center of the board.
func NewSession(grid types.Grid, color types.Color, rng *rand.Rand) *Session {
	collisionMgr := manager.NewCollisionManager(grid)
	s := &Session{
		UUID:        uuid.New().String(),
		Grid:        grid,
		Snake:       entity.NewSnake(grid.Center(), color),
		StartTime:   time.Now(),
		foodManager: manager.NewFoodManager(grid, rng, collisionMgr),
	}
	s.log = logger.Log.WithField("session", s.UUID)

	// Generate initial food
	pos, _ := s.foodManager.GenerateFood(s.Snake)
	s.Food = entity.NewFood(pos)

	s.log.WithFields(logrus.Fields{
		"grid":  [2]int{grid.Width, grid.Height},
		"color": color,
	}).Info("session started")
	return s
}

// Steer offers the directions pressed during this tick, oldest first. The last
// one the snake accepts wins.
func (s *Session) Steer(dirs ...types.Direction) {
	for _, d := range dirs {
		s.Snake.SetDirection(d)
	}
}

// Tick advances the game by one step and reports whether it just ended.
func (s *Session) Tick() bool {
	if s.Over {
		return true
	}

	s.Steps++
	switch s.Snake.Step(s.Grid, s.Food.Position) {
	case entity.Collided:
		s.Over = true
		s.log.WithFields(logrus.Fields{
			"score":    s.Snake.Score,
			"length":   s.Snake.Len(),
			"steps":    s.Steps,
			"duration": s.Elapsed().Round(time.Millisecond).String(),
		}).Info("session over")
		return true
	case entity.Ate:
		s.log.WithField("score", s.Snake.Score).Debug("food eaten")
		if pos, ok := s.foodManager.GenerateFood(s.Snake); ok {
			s.Food.MoveTo(pos)
		} else {
			s.log.Warn("board is full, food left in place")
		}
	}
	return false
}

func (s *Session) Score() int {
	return s.Snake.Score
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
