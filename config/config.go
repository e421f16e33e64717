package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"snake-arcade/game/types"

	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the window and logging settings of the game.
type Config struct {
	ScreenWidth  int    // Window width in pixels
	ScreenHeight int    // Window height in pixels
	CellSize     int    // Side of one grid cell in pixels
	FPS          int    // Ticks per second for every screen
	Title        string // Window title
	LogLevel     string // logrus level name
	LogFormat    string // "text" or "json"
}

// Default matches the classic 600x600 board with 20px cells at 10 ticks per second.
func Default() Config {
	return Config{
		ScreenWidth:  600,
		ScreenHeight: 600,
		CellSize:     types.DefaultCellSize,
		FPS:          10,
		Title:        "Snake Game",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads the given .env files (".env" when none is given) into the
// environment and builds the configuration from it. Missing files are not an
// error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from lookup, keeping defaults for unset keys.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_WIDTH", &cfg.ScreenWidth},
		{"SNAKE_HEIGHT", &cfg.ScreenHeight},
		{"SNAKE_CELL_SIZE", &cfg.CellSize},
		{"SNAKE_FPS", &cfg.FPS},
	}
	for _, e := range ints {
		raw, ok := lookup(e.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, e.key, err)
		}
		*e.dst = v
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"SNAKE_TITLE", &cfg.Title},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"LOG_FORMAT", &cfg.LogFormat},
	}
	for _, e := range strs {
		if raw, ok := lookup(e.key); ok && raw != "" {
			*e.dst = raw
		}
	}

	return cfg, nil
}

// Validate rejects sizes the board cannot be built from.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.ScreenWidth < c.CellSize || c.ScreenHeight < c.CellSize:
		return fmt.Errorf("%w: window %dx%d is smaller than one cell (%d)", ErrInvalid, c.ScreenWidth, c.ScreenHeight, c.CellSize)
	case c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0:
		return fmt.Errorf("%w: window %dx%d is not a multiple of the cell size %d", ErrInvalid, c.ScreenWidth, c.ScreenHeight, c.CellSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	return nil
}

// Grid is the board the window holds.
func (c Config) Grid() types.Grid {
	return types.NewGrid(c.ScreenWidth/c.CellSize, c.ScreenHeight/c.CellSize, c.CellSize)
}
