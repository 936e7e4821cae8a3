package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/exp/rand"

	"strawberry-snake/config"
	"strawberry-snake/game"
	"strawberry-snake/game/loop"
	"strawberry-snake/logger"
	"strawberry-snake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Uint64("seed", 0, "Random seed for strawberry placement (0 = use the clock)")
	fps := flag.Float64("fps", 0, "Starting tick rate, overrides the config")
	flag.Parse()

	if err := run(*configPath, *seed, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, fps float64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if fps > 0 {
		cfg.InitialFPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(level)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("seed %d", cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	g, err := game.NewGame(cfg, rng, log)
	if err != nil {
		return err
	}

	if err := ui.OpenWindow(cfg, log); err != nil {
		return err
	}
	defer ui.CloseWindow()

	renderer := ui.NewRenderer(cfg, log)
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l := loop.New(g, ui.NewKeyboard(), renderer, loop.Options{
		InitialFPS: cfg.InitialFPS,
		MaxFPS:     cfg.MaxFPS,
		TileSize:   cfg.TileSize,
	}, log)

	summary, err := l.Run(ctx)
	if data, jerr := json.MarshalIndent(summary, "", "  "); jerr == nil {
		log.Infof("session summary:\n%s", data)
	}
	return err
}
