package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/setgame/internal/config"
	"github.com/lox/setgame/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string    `short:"c" help:"HCL config file" default:"${config_file}" type:"path"`
	LogLevel string    `help:"Log level (debug, info, warn, error), overrides the config file"`
	NoColor  bool      `help:"Disable colour output"`
	Out      io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play Set in the terminal"`
	Deal     DealCmd          `cmd:"" help:"Deal a random table and list its sets"`
	Check    CheckCmd         `cmd:"" help:"Check whether three cards form a set"`
	Solve    SolveCmd         `cmd:"" help:"Print the card completing a set with two others"`
	Find     FindCmd          `cmd:"" help:"List every set among the given cards"`
	Simulate SimulateCmd      `cmd:"" help:"Estimate how many sets random tables hold"`
	Census   CensusCmd        `cmd:"" help:"Count the sets in the full deck"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("setgame"),
		kong.Description("Play and analyse the card game Set"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the config file and applies flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	if g.NoColor {
		tui.DisableColor()
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}

// setup loads the config and a logger writing to stderr.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
