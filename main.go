package main

import (
	"flag"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/game/manager"
	"snake-arcade/logger"
	"snake-arcade/screen"
	"snake-arcade/ui"

	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Error("configuration")
		os.Exit(1)
	}

	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Ticks per second (higher = faster snake)")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Window width in pixels")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Window height in pixels")
	flag.Parse()

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Error("configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Log.WithError(err).Error("snake exited")
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, err := ui.NewContext(cfg)
	if err != nil {
		return err
	}
	defer ctx.Close()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	controller := screen.NewController(manager.DefaultSkin)
	return controller.Run(ui.NewScreens(ctx, rng))
}
