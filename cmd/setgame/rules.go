package main

import (
	"errors"
	"fmt"

	"github.com/lox/setgame/internal/randutil"
	"github.com/lox/setgame/set"
)

var errNotASet = errors.New("cards do not form a set")

// DealCmd deals a random table
type DealCmd struct {
	Count int   `short:"n" help:"Cards to deal, 0 uses the configured table size"`
	Seed  int64 `help:"Deterministic RNG seed, 0 for random"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	count := c.Count
	if count == 0 {
		count = cfg.Game.TableSize
	}
	if count < 0 || count > set.DeckSize {
		return fmt.Errorf("count must be between 1 and %d, got %d", set.DeckSize, count)
	}

	seed := randutil.Seed(c.Seed)
	logger.Debug("Dealing table", "count", count, "seed", seed)

	table, deck := set.Deal(set.GenerateDeck(randutil.New(seed)), count)
	sets := set.FindAllSets(table)

	w := g.out()
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Table of %d cards (seed %d, %d left in deck)", len(table), seed, len(deck))))
	printCards(w, table)
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Sets: %d", len(sets))))
	printSets(w, sets)
	return nil
}

// CheckCmd validates three cards
type CheckCmd struct {
	Cards []string `arg:"" help:"Three cards, e.g. red-circle-blank-1"`
}

func (c *CheckCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}
	if len(c.Cards) != 3 {
		return fmt.Errorf("expected 3 cards, got %d", len(c.Cards))
	}
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}

	w := g.out()
	printCards(w, cards)
	if !set.IsValidSet(cards) {
		fmt.Fprintln(w, noStyle.Render("Not a set"))
		return errNotASet
	}
	fmt.Fprintln(w, yesStyle.Render("Set!"))
	return nil
}

// SolveCmd completes a set from two cards
type SolveCmd struct {
	Cards []string `arg:"" help:"Two different cards"`
}

func (c *SolveCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}
	if len(c.Cards) != 2 {
		return fmt.Errorf("expected 2 cards, got %d", len(c.Cards))
	}
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}
	if cards[0] == cards[1] {
		return fmt.Errorf("cards must differ, got %s twice", cards[0])
	}

	third := set.FindThirdCard(cards[0], cards[1])
	fmt.Fprintf(g.out(), "%s  %s\n", third, glyph(third))
	return nil
}

// FindCmd lists the sets among some cards
type FindCmd struct {
	Cards []string `arg:"" help:"Cards to search"`
}

func (c *FindCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}

	sets := set.FindAllSets(cards)
	w := g.out()
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d sets among %d cards", len(sets), len(cards))))
	printSets(w, sets)
	return nil
}
