package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/setgame/set"
)

// Hint summarises the sets currently available on a table.
type Hint struct {
	Sets    []set.Set
	Message string
}

// Count returns the number of sets available.
func (h Hint) Count() int {
	return len(h.Sets)
}

// Classic is a single player game of Set: find sets among the cards on the
// table until the deck runs out. It is safe for concurrent use; each call
// is evaluated atomically.
type Classic struct {
	mu     sync.Mutex
	id     string
	cfg    *sessionConfig
	clock  quartz.Clock
	logger *log.Logger

	deck      set.Deck
	table     []set.Card
	selected  []set.Card
	found     []set.Set
	processed map[string]bool
	score     int

	wrong      []set.Card
	wrongUntil time.Time
}

// NewClassic deals a fresh classic game.
//
//	g := game.NewClassic(game.WithRand(randutil.New(42)))
//	outcome, err := g.Toggle(0)
func NewClassic(opts ...Option) *Classic {
	cfg := newSessionConfig(opts)
	id := cfg.ids.Generate()

	g := &Classic{
		id:     id,
		cfg:    cfg,
		clock:  cfg.clock,
		logger: cfg.logger.WithPrefix("classic").With("game", id),
	}
	g.reset()
	return g
}

// ID returns the session id.
func (g *Classic) ID() string {
	return g.id
}

// NewGame discards the current state and deals a new game in place.
func (g *Classic) NewGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

func (g *Classic) reset() {
	g.table, g.deck = set.Deal(set.GenerateDeck(g.cfg.rng), g.cfg.tableSize)
	g.selected = nil
	g.found = nil
	g.processed = make(map[string]bool)
	g.score = 0
	g.wrong = nil
	g.wrongUntil = time.Time{}

	g.logger.Info("Dealt new game", "table", len(g.table), "deck", len(g.deck))
}

// Toggle selects or deselects the table card at index i. Completing a
// selection of three cards evaluates it: a valid set is scored and replaced
// from the deck, a wrong one blocks further toggles for the cooldown.
func (g *Classic) Toggle(i int) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkCooldown(); err != nil {
		return OutcomeWrong, err
	}
	if i < 0 || i >= len(g.table) {
		return OutcomeSelected, fmt.Errorf("%w: %d (table has %d cards)", ErrOutOfRange, i, len(g.table))
	}

	card := g.table[i]
	for j, c := range g.selected {
		if c == card {
			g.selected = append(g.selected[:j:j], g.selected[j+1:]...)
			return OutcomeDeselected, nil
		}
	}

	g.selected = append(g.selected, card)
	if len(g.selected) < 3 {
		return OutcomeSelected, nil
	}

	if !set.IsValidSet(g.selected) {
		g.logger.Debug("Wrong selection", "cards", g.selected)
		g.wrong = g.selected
		if g.cfg.cooldown <= 0 {
			g.clearWrong()
		} else {
			g.wrongUntil = g.clock.Now().Add(g.cfg.cooldown)
		}
		return OutcomeWrong, nil
	}

	found := set.Set{g.selected[0], g.selected[1], g.selected[2]}
	if key := found.Key(); !g.processed[key] {
		g.processed[key] = true
		g.score++
		g.found = append(g.found, found)
	}
	g.removeFromTable(g.selected)
	g.selected = nil

	if len(g.table) < g.cfg.tableSize && len(g.deck) > 0 {
		g.draw(min(g.cfg.drawSize, len(g.deck)))
	}

	g.logger.Info("Set found", "set", found, "score", g.score, "deck", len(g.deck))
	return OutcomeSet, nil
}

// ToggleCard toggles the table card equal to c.
func (g *Classic) ToggleCard(c set.Card) (Outcome, error) {
	g.mu.Lock()
	i := -1
	for j, tc := range g.table {
		if tc == c {
			i = j
			break
		}
	}
	g.mu.Unlock()

	if i < 0 {
		return OutcomeSelected, fmt.Errorf("%w: %s", ErrCardNotOnTable, c)
	}
	return g.Toggle(i)
}

// checkCooldown clears an expired wrong selection or reports that one is
// still pending.
func (g *Classic) checkCooldown() error {
	if g.wrong == nil {
		return nil
	}
	if g.clock.Now().Before(g.wrongUntil) {
		return ErrCooldown
	}
	g.clearWrong()
	return nil
}

func (g *Classic) clearWrong() {
	g.wrong = nil
	g.selected = nil
	g.wrongUntil = time.Time{}
}

// Refresh clears a wrong selection whose cooldown has elapsed. It reports
// whether anything changed.
func (g *Classic) Refresh() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.wrong == nil || g.clock.Now().Before(g.wrongUntil) {
		return false
	}
	g.clearWrong()
	return true
}

// CooldownRemaining returns how long new selections stay blocked.
func (g *Classic) CooldownRemaining() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.wrong == nil {
		return 0
	}
	return max(g.wrongUntil.Sub(g.clock.Now()), 0)
}

func (g *Classic) removeFromTable(cards []set.Card) {
	kept := g.table[:0:0]
	for _, c := range g.table {
		if !set.Deck(cards).Contains(c) {
			kept = append(kept, c)
		}
	}
	g.table = kept
}

func (g *Classic) draw(n int) {
	var drawn []set.Card
	drawn, g.deck = set.Deal(g.deck, n)
	g.table = append(g.table, drawn...)
}

// AddCards deals the draw size onto the table, for when no set can be
// found. It returns the number of cards added.
func (g *Classic) AddCards() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.deck) < g.cfg.drawSize {
		return 0, fmt.Errorf("%w: %d remaining", ErrEmptyDeck, len(g.deck))
	}
	g.draw(g.cfg.drawSize)

	g.logger.Info("Added cards", "table", len(g.table), "deck", len(g.deck))
	return g.cfg.drawSize, nil
}

// Hint reports how many sets are on the table.
func (g *Classic) Hint() Hint {
	g.mu.Lock()
	sets := set.FindAllSets(g.table)
	g.mu.Unlock()

	return Hint{Sets: sets, Message: hintMessage(len(sets), g.cfg.drawSize)}
}

func hintMessage(n, drawSize int) string {
	switch n {
	case 0:
		return fmt.Sprintf("No sets available! Add %d cards to get more options.", drawSize)
	case 1:
		return "There is 1 set available on the table!"
	default:
		return fmt.Sprintf("There are %d sets available on the table!", n)
	}
}

// Over reports whether the game is finished: the deck is empty and no set
// remains on the table.
func (g *Classic) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.deck) == 0 && !set.HasSet(g.table)
}

// Table returns a copy of the cards on the table.
func (g *Classic) Table() []set.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]set.Card(nil), g.table...)
}

// Selected returns a copy of the current selection.
func (g *Classic) Selected() []set.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]set.Card(nil), g.selected...)
}

// WrongSelection returns the selection being penalised, if any.
func (g *Classic) WrongSelection() []set.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]set.Card(nil), g.wrong...)
}

// Found returns the distinct sets found so far in order.
func (g *Classic) Found() []set.Set {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]set.Set(nil), g.found...)
}

// Score returns the number of distinct sets found.
func (g *Classic) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// DeckRemaining returns the number of undealt cards.
func (g *Classic) DeckRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.deck)
}
