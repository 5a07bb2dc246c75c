package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "setgame.hcl"

// Config represents the complete setgame configuration
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	LogFile    string            `hcl:"log_file,optional"`
	ScoresFile string            `hcl:"scores_file,optional"`
	Game       *GameSettings     `hcl:"game,block"`
	Simulate   *SimulateSettings `hcl:"simulate,block"`
}

// GameSettings controls table sizes and timings of game sessions
type GameSettings struct {
	TableSize        int `hcl:"table_size,optional"`
	DrawSize         int `hcl:"draw_size,optional"`
	CooldownMS       int `hcl:"cooldown_ms,optional"`
	PuzzleCooldownMS int `hcl:"puzzle_cooldown_ms,optional"`
	PuzzleOptions    int `hcl:"puzzle_options,optional"`
	BestTimes        int `hcl:"best_times,optional"`
}

// SimulateSettings are the defaults for the simulate command
type SimulateSettings struct {
	Tables    int `hcl:"tables,optional"`
	TableSize int `hcl:"table_size,optional"`
	Workers   int `hcl:"workers,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultGameSettings returns the standard game: twelve cards dealt three
// at a time and a two second penalty for a wrong set.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		TableSize:        12,
		DrawSize:         3,
		CooldownMS:       2000,
		PuzzleCooldownMS: 1000,
		PuzzleOptions:    9,
		BestTimes:        10,
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes configuration from HCL source. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = "setgame.log"
	}
	if c.ScoresFile == "" {
		c.ScoresFile = "setgame-scores.json"
	}

	defaults := DefaultGameSettings()
	if c.Game == nil {
		c.Game = &defaults
	} else {
		// Zero means unset. A negative cooldown disables it.
		if c.Game.TableSize == 0 {
			c.Game.TableSize = defaults.TableSize
		}
		if c.Game.DrawSize == 0 {
			c.Game.DrawSize = defaults.DrawSize
		}
		if c.Game.CooldownMS == 0 {
			c.Game.CooldownMS = defaults.CooldownMS
		}
		if c.Game.PuzzleCooldownMS == 0 {
			c.Game.PuzzleCooldownMS = defaults.PuzzleCooldownMS
		}
		if c.Game.PuzzleOptions == 0 {
			c.Game.PuzzleOptions = defaults.PuzzleOptions
		}
		if c.Game.BestTimes == 0 {
			c.Game.BestTimes = defaults.BestTimes
		}
	}

	if c.Simulate == nil {
		c.Simulate = &SimulateSettings{}
	}
	if c.Simulate.Tables == 0 {
		c.Simulate.Tables = 100000
	}
	if c.Simulate.TableSize == 0 {
		c.Simulate.TableSize = c.Game.TableSize
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	g := c.Game
	if g.TableSize < 3 || g.TableSize > 81 || g.TableSize%3 != 0 {
		return fmt.Errorf("table size must be a multiple of 3 between 3 and 81, got %d", g.TableSize)
	}
	if g.DrawSize < 1 || g.DrawSize > 9 {
		return fmt.Errorf("draw size must be between 1 and 9, got %d", g.DrawSize)
	}
	if g.PuzzleOptions < 2 || g.PuzzleOptions > 79 {
		return fmt.Errorf("puzzle options must be between 2 and 79, got %d", g.PuzzleOptions)
	}
	if g.BestTimes < 1 {
		return fmt.Errorf("best times must be at least 1, got %d", g.BestTimes)
	}

	s := c.Simulate
	if s.Tables < 1 {
		return fmt.Errorf("simulate tables must be positive, got %d", s.Tables)
	}
	if s.TableSize < 3 || s.TableSize > 81 {
		return fmt.Errorf("simulate table size must be between 3 and 81, got %d", s.TableSize)
	}
	if s.Workers < 0 {
		return fmt.Errorf("simulate workers must not be negative, got %d", s.Workers)
	}

	return nil
}

// Cooldown returns the classic wrong-selection penalty. Negative settings
// disable it.
func (g GameSettings) Cooldown() time.Duration {
	return msDuration(g.CooldownMS)
}

// PuzzleCooldown returns the puzzle wrong-guess penalty.
func (g GameSettings) PuzzleCooldown() time.Duration {
	return msDuration(g.PuzzleCooldownMS)
}

func msDuration(ms int) time.Duration {
	if ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
