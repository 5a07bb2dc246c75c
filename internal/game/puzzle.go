package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/setgame/set"
)

// Puzzle is the timed "find the third card" mode: two target cards are
// shown together with a handful of options, exactly one of which completes
// the set.
type Puzzle struct {
	mu     sync.Mutex
	id     string
	cfg    *sessionConfig
	clock  quartz.Clock
	logger *log.Logger

	round     int
	targets   [2]set.Card
	options   []set.Card
	answer    set.Card
	startedAt time.Time
	solvedAt  time.Time
	solved    bool

	wrong      int
	wrongUntil time.Time

	score     int
	bestTimes []time.Duration
}

// NewPuzzle creates a puzzle session with its first round ready.
func NewPuzzle(opts ...Option) *Puzzle {
	cfg := newSessionConfig(opts)
	id := cfg.ids.Generate()

	p := &Puzzle{
		id:     id,
		cfg:    cfg,
		clock:  cfg.clock,
		logger: cfg.logger.WithPrefix("puzzle").With("game", id),
	}
	for _, d := range cfg.pastTimes {
		p.recordTime(d)
	}
	p.nextRound()
	return p
}

// ID returns the session id.
func (p *Puzzle) ID() string {
	return p.id
}

// Next starts a new round, keeping score and best times.
func (p *Puzzle) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextRound()
}

func (p *Puzzle) nextRound() {
	deck := set.GenerateDeck(p.cfg.rng)

	// The top two cards of a shuffled deck are a uniform pair of distinct cards.
	p.targets = [2]set.Card{deck[0], deck[1]}
	p.answer = set.FindThirdCard(deck[0], deck[1])

	distractors := deck[2:].Without(p.answer)
	p.options = make([]set.Card, 0, p.cfg.puzzleOptions)
	p.options = append(p.options, distractors[:p.cfg.puzzleOptions-1]...)
	p.options = append(p.options, p.answer)
	set.Shuffle(p.options, p.cfg.rng)

	p.round++
	p.solved = false
	p.solvedAt = time.Time{}
	p.wrong = -1
	p.wrongUntil = time.Time{}
	p.startedAt = p.clock.Now()

	p.logger.Debug("New puzzle", "round", p.round, "targets", p.targets[:], "answer", p.answer)
}

// Guess submits the option at index i as the third card.
func (p *Puzzle) Guess(i int) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.solved {
		return OutcomeSet, ErrPuzzleSolved
	}
	now := p.clock.Now()
	if p.wrong >= 0 {
		if now.Before(p.wrongUntil) {
			return OutcomeWrong, ErrCooldown
		}
		p.wrong = -1
	}
	if i < 0 || i >= len(p.options) {
		return OutcomeWrong, fmt.Errorf("%w: %d (%d options)", ErrOutOfRange, i, len(p.options))
	}

	card := p.options[i]
	if !set.IsValidSet([]set.Card{p.targets[0], p.targets[1], card}) {
		if p.cfg.puzzleCooldown > 0 {
			p.wrong = i
			p.wrongUntil = now.Add(p.cfg.puzzleCooldown)
		}
		p.logger.Debug("Wrong guess", "card", card)
		return OutcomeWrong, nil
	}

	p.solved = true
	p.solvedAt = now
	p.score++
	elapsed := now.Sub(p.startedAt)
	p.recordTime(elapsed)

	p.logger.Info("Puzzle solved", "round", p.round, "elapsed", elapsed, "score", p.score)
	return OutcomeSet, nil
}

func (p *Puzzle) recordTime(d time.Duration) {
	p.bestTimes = append(p.bestTimes, d)
	sort.Slice(p.bestTimes, func(i, j int) bool { return p.bestTimes[i] < p.bestTimes[j] })
	if len(p.bestTimes) > p.cfg.bestTimes {
		p.bestTimes = p.bestTimes[:p.cfg.bestTimes]
	}
}

// Refresh clears an expired wrong guess and advances to the next round once
// the post-solve delay has passed. It reports whether anything changed.
func (p *Puzzle) Refresh() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	changed := false
	if p.wrong >= 0 && !now.Before(p.wrongUntil) {
		p.wrong = -1
		changed = true
	}
	if p.solved && !now.Before(p.solvedAt.Add(p.cfg.nextDelay)) {
		p.nextRound()
		changed = true
	}
	return changed
}

// Ready reports whether a solved round has waited out the post-solve delay.
func (p *Puzzle) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.solved && !p.clock.Now().Before(p.solvedAt.Add(p.cfg.nextDelay))
}

// Elapsed returns the time spent on the current round, frozen once solved.
func (p *Puzzle) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.solved {
		return p.solvedAt.Sub(p.startedAt)
	}
	return p.clock.Now().Sub(p.startedAt)
}

// Targets returns the two cards the answer must complete.
func (p *Puzzle) Targets() [2]set.Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.targets
}

// Options returns a copy of the candidate cards.
func (p *Puzzle) Options() []set.Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]set.Card(nil), p.options...)
}

// WrongGuess returns the index of the option being penalised, or -1.
func (p *Puzzle) WrongGuess() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wrong >= 0 && !p.clock.Now().Before(p.wrongUntil) {
		return -1
	}
	return p.wrong
}

// Solved reports whether the current round is solved.
func (p *Puzzle) Solved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.solved
}

// Round returns the 1-based number of the current round.
func (p *Puzzle) Round() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.round
}

// Score returns the number of solved rounds.
func (p *Puzzle) Score() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.score
}

// BestTimes returns the kept solve times, fastest first.
func (p *Puzzle) BestTimes() []time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]time.Duration(nil), p.bestTimes...)
}

// TopTimes returns at most n of the fastest solve times.
func (p *Puzzle) TopTimes(n int) []time.Duration {
	times := p.BestTimes()
	n = max(n, 0)
	if n < len(times) {
		times = times[:n]
	}
	return times
}
