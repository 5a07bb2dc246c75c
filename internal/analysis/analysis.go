// Package analysis answers combinatorial questions about the Set deck,
// either exhaustively or by Monte Carlo simulation of random tables.
package analysis

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/setgame/internal/randutil"
	"github.com/lox/setgame/internal/statistics"
	"github.com/lox/setgame/set"
)

// CensusResult is the exhaustive count over every triple of the full deck.
type CensusResult struct {
	Triples int
	Sets    int
}

// Census examines all C(81,3) triples of the deck and counts the sets.
func Census() CensusResult {
	deck := set.NewOrderedDeck()
	var res CensusResult
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			for k := j + 1; k < len(deck); k++ {
				res.Triples++
				if set.IsValidSet([]set.Card{deck[i], deck[j], deck[k]}) {
					res.Sets++
				}
			}
		}
	}
	return res
}

// Config holds configuration for running simulations
type Config struct {
	Tables    int
	TableSize int
	Seed      int64
	Workers   int // 0 picks a value from the CPU count
	Logger    *log.Logger
}

// Simulate deals cfg.Tables random tables and tallies how many sets each
// contains. Table i is always dealt from the seed derived from cfg.Seed and
// i, so the histogram is reproducible whatever the worker count.
func Simulate(ctx context.Context, cfg Config) (*statistics.Statistics, error) {
	if cfg.Tables < 1 {
		return nil, fmt.Errorf("tables must be positive, got %d", cfg.Tables)
	}
	if cfg.TableSize < 3 || cfg.TableSize > set.DeckSize {
		return nil, fmt.Errorf("table size must be between 3 and %d, got %d", set.DeckSize, cfg.TableSize)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger = logger.WithPrefix("simulate")

	workers := cfg.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	workers = min(workers, cfg.Tables)

	logger.Info("Starting simulation", "tables", cfg.Tables, "size", cfg.TableSize, "workers", workers, "seed", cfg.Seed)
	start := time.Now()

	results := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			// Workers take interleaved table indices: w, w+workers, ...
			for n, i := 0, w; i < cfg.Tables; n, i = n+1, i+workers {
				if n%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				stats.Add(dealTable(randutil.Derive(cfg.Seed, i), cfg.TableSize))
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}

	total := &statistics.Statistics{}
	for _, r := range results {
		total.Merge(r)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "tables", total.Tables, "mean", total.Mean(), "noSetRate", total.NoSetRate(), "duration", time.Since(start))
	return total, nil
}

func dealTable(seed int64, size int) statistics.TableResult {
	table, _ := set.Deal(set.GenerateDeck(randutil.New(seed)), size)
	return statistics.TableResult{
		Seed:      seed,
		TableSize: size,
		Sets:      set.CountSets(table),
	}
}
