package main

import (
	"fmt"
	"os"

	"github.com/lox/setgame/internal/game"
	"github.com/lox/setgame/internal/randutil"
	"github.com/lox/setgame/internal/scores"
	"github.com/lox/setgame/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Mode string `short:"m" enum:"classic,puzzle" default:"classic" help:"Game mode (classic, puzzle)"`
	Seed int64  `help:"Deterministic RNG seed, 0 for random"`
}

func (c *PlayCmd) Run(g *Globals) error {
	mode, err := tui.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so the log goes to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(cfg, logFile)
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed)
	logger.Info("Starting game", "mode", mode, "seed", seed)

	ctx, cancel := signalContext(logger)
	defer cancel()

	opts := []game.Option{
		game.WithSettings(*cfg.Game),
		game.WithRand(randutil.New(seed)),
	}
	if mode == tui.ModePuzzle {
		past, err := scores.Load(cfg.ScoresFile)
		if err != nil {
			logger.Warn("Ignoring saved scores", "file", cfg.ScoresFile, "error", err)
		}
		opts = append(opts, game.WithPastTimes(past))
	}

	model := tui.NewModel(mode, logger, opts...)
	if err := tui.Run(ctx, model); err != nil {
		return err
	}

	if mode == tui.ModePuzzle {
		if err := scores.Save(cfg.ScoresFile, model.BestTimes()); err != nil {
			return err
		}
		logger.Info("Saved best times", "file", cfg.ScoresFile)
	}
	return nil
}
