package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/setgame/internal/config"
	"github.com/lox/setgame/internal/gameid"
	"github.com/lox/setgame/internal/randutil"
	"github.com/lox/setgame/set"
)

// Option configures a session during creation.
type Option func(*sessionConfig)

// sessionConfig holds all configuration for creating a session.
type sessionConfig struct {
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
	ids    *gameid.Generator

	tableSize      int
	drawSize       int
	cooldown       time.Duration
	puzzleCooldown time.Duration
	puzzleOptions  int
	bestTimes      int
	nextDelay      time.Duration
	pastTimes      []time.Duration
}

func newSessionConfig(opts []Option) *sessionConfig {
	defaults := config.DefaultGameSettings()
	cfg := &sessionConfig{
		tableSize:      defaults.TableSize,
		drawSize:       defaults.DrawSize,
		cooldown:       defaults.Cooldown(),
		puzzleCooldown: defaults.PuzzleCooldown(),
		puzzleOptions:  defaults.PuzzleOptions,
		bestTimes:      defaults.BestTimes,
		nextDelay:      2 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.rng == nil {
		cfg.rng = randutil.New(randutil.Seed(0))
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.ids == nil {
		cfg.ids = gameid.NewGenerator(nil)
	}

	if cfg.tableSize < 3 || cfg.tableSize > set.DeckSize {
		panic(fmt.Sprintf("table size %d out of range", cfg.tableSize))
	}
	if cfg.drawSize < 1 {
		panic(fmt.Sprintf("draw size %d must be positive", cfg.drawSize))
	}
	if cfg.puzzleOptions < 2 || cfg.puzzleOptions > set.DeckSize-2 {
		panic(fmt.Sprintf("puzzle options %d out of range", cfg.puzzleOptions))
	}
	if cfg.bestTimes < 1 {
		panic(fmt.Sprintf("best times %d must be positive", cfg.bestTimes))
	}

	return cfg
}

// WithRand sets the random source used to shuffle decks. Pass a seeded
// source for reproducible games.
func WithRand(rng *rand.Rand) Option {
	return func(c *sessionConfig) {
		c.rng = rng
	}
}

// WithClock sets the clock used for cooldowns and puzzle timings.
func WithClock(clock quartz.Clock) Option {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Sessions log with their own prefix.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithIDGenerator sets the generator used for session ids.
func WithIDGenerator(ids *gameid.Generator) Option {
	return func(c *sessionConfig) {
		c.ids = ids
	}
}

// WithTableSize sets how many cards a classic table is dealt and refilled to.
func WithTableSize(n int) Option {
	return func(c *sessionConfig) {
		c.tableSize = n
	}
}

// WithDrawSize sets how many cards are drawn per refill or "add cards".
func WithDrawSize(n int) Option {
	return func(c *sessionConfig) {
		c.drawSize = n
	}
}

// WithCooldown sets how long a wrong classic selection blocks new selections.
func WithCooldown(d time.Duration) Option {
	return func(c *sessionConfig) {
		c.cooldown = d
	}
}

// WithPuzzleCooldown sets how long a wrong puzzle guess blocks new guesses.
func WithPuzzleCooldown(d time.Duration) Option {
	return func(c *sessionConfig) {
		c.puzzleCooldown = d
	}
}

// WithPuzzleOptions sets how many candidate cards a puzzle offers.
func WithPuzzleOptions(n int) Option {
	return func(c *sessionConfig) {
		c.puzzleOptions = n
	}
}

// WithBestTimes sets how many best puzzle times are kept.
func WithBestTimes(n int) Option {
	return func(c *sessionConfig) {
		c.bestTimes = n
	}
}

// WithPastTimes seeds the best times of a puzzle session, e.g. with times
// saved by an earlier run.
func WithPastTimes(times []time.Duration) Option {
	return func(c *sessionConfig) {
		c.pastTimes = append([]time.Duration(nil), times...)
	}
}

// WithNextDelay sets the pause after a solved puzzle before the next one.
func WithNextDelay(d time.Duration) Option {
	return func(c *sessionConfig) {
		c.nextDelay = d
	}
}

// WithSettings applies game settings loaded from a config file.
func WithSettings(s config.GameSettings) Option {
	return func(c *sessionConfig) {
		c.tableSize = s.TableSize
		c.drawSize = s.DrawSize
		c.cooldown = s.Cooldown()
		c.puzzleCooldown = s.PuzzleCooldown()
		c.puzzleOptions = s.PuzzleOptions
		c.bestTimes = s.BestTimes
	}
}
