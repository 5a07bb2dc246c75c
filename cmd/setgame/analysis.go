package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/setgame/internal/analysis"
	"github.com/lox/setgame/internal/randutil"
)

const histogramWidth = 40

// SimulateCmd runs a Monte Carlo estimate over random tables
type SimulateCmd struct {
	Tables  int   `short:"t" help:"Tables to deal, 0 uses the configured value"`
	Size    int   `short:"k" help:"Cards per table, 0 uses the configured value"`
	Seed    int64 `help:"Deterministic RNG seed, 0 for random"`
	Workers int   `short:"w" help:"Parallel workers, 0 picks from the CPU count"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	sim := analysis.Config{
		Tables:    cfg.Simulate.Tables,
		TableSize: cfg.Simulate.TableSize,
		Workers:   cfg.Simulate.Workers,
		Seed:      randutil.Seed(c.Seed),
		Logger:    logger,
	}
	if c.Tables != 0 {
		sim.Tables = c.Tables
	}
	if c.Size != 0 {
		sim.TableSize = c.Size
	}
	if c.Workers != 0 {
		sim.Workers = c.Workers
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	stats, err := analysis.Simulate(ctx, sim)
	if err != nil {
		return err
	}

	w := g.out()
	lo, hi := stats.ConfidenceInterval95()
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d tables of %d cards (seed %d)", stats.Tables, sim.TableSize, sim.Seed)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Mean sets\t%.4f ± %.4f\t(95%% CI %.4f to %.4f)\n", stats.Mean(), stats.StdDev(), lo, hi)
	fmt.Fprintf(tw, "  Median\t%d\n", stats.Median())
	fmt.Fprintf(tw, "  No set\t%.2f%%\t(%d tables)\n", 100*stats.NoSetRate(), stats.NoSets)
	fmt.Fprintf(tw, "  Most sets\t%d\t(seed %d)\n", stats.MaxSets, stats.MaxSeed)
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Distribution"))

	peak := 0
	for _, n := range stats.Histogram {
		peak = max(peak, n)
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, k := range stats.Counts() {
		n := stats.Histogram[k]
		bar := strings.Repeat("█", max(n*histogramWidth/peak, 1))
		fmt.Fprintf(tw, "  %d\t%d\t%.2f%%\t %s\n", k, n, 100*float64(n)/float64(stats.Tables), yesStyle.Render(bar))
	}
	tw.Flush()
	return nil
}

// CensusCmd counts every set in the deck
type CensusCmd struct{}

func (c *CensusCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	res := analysis.Census()
	logger.Debug("Census complete", "triples", res.Triples, "sets", res.Sets)

	w := g.out()
	fmt.Fprintln(w, headerStyle.Render("Full deck census"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Triples\t%d\n", res.Triples)
	fmt.Fprintf(tw, "  Sets\t%d\n", res.Sets)
	fmt.Fprintf(tw, "  Odds\t1 in %d\n", res.Triples/res.Sets)
	tw.Flush()
	return nil
}
