package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"grid-roguelike/internal/config"
	"grid-roguelike/internal/game"
	"grid-roguelike/internal/level"
	"grid-roguelike/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	levelName := flag.String("level", "", "level to start on (overrides config)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *levelName != "" {
		cfg.Level = *levelName
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	log, err := logging.ForTerminal(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	levels := level.Default
	if cfg.LevelFile != "" {
		levels = func() (*level.Set, error) { return level.Load(cfg.LevelFile) }
	}
	set, err := levels()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g, err := game.New(screen, game.Options{
		Levels:     set,
		Level:      cfg.Level,
		Seed:       cfg.Seed,
		Log:        log,
		RecordRuns: true,
	})
	if err != nil {
		screen.Fini()
		return err
	}
	log.Info("starting", zap.String("level", g.LevelName()), zap.Int64("seed", cfg.Seed))
	g.Run()
	return nil
}
