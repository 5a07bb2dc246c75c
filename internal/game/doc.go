// Package game implements interactive Set sessions on top of the rules in
// package set.
//
// Classic is the table game: twelve cards are dealt, the player selects three
// at a time, and valid sets are scored and replaced from the deck until it runs
// out. Puzzle is the timed variant: two cards are shown and the player picks the
// third from a handful of options.
//
// # Basic Usage
//
//	g := game.NewClassic(game.WithRand(randutil.New(42)))
//	for _, i := range []int{0, 4, 7} {
//	    outcome, err := g.Toggle(i)
//	    ...
//	}
//	fmt.Println(g.Hint().Message)
//
// Sessions are safe for concurrent use. Time is read through a quartz.Clock
// (WithClock) so cooldowns and solve times can be driven by a mock clock in
// tests.
package game
