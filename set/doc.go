// Package set implements the rules of the card game Set.
//
// A card has four attributes (color, shape, filling and number), each taking
// one of three values, for 81 distinct cards. Three cards form a set when,
// for every attribute independently, their values are either all the same
// or all different.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	deck := set.GenerateDeck(rng)
//	table, deck := set.Deal(deck, 12)
//	for _, s := range set.FindAllSets(table) {
//	    fmt.Println(s)
//	}
//
// Given any two distinct cards there is exactly one third card completing a
// set:
//
//	c := set.FindThirdCard(a, b) // set.IsValidSet([]set.Card{a, b, c}) == true
//
// Every function in this package is pure. Inputs are never mutated and the
// functions are safe for concurrent use. Randomness is injected through the
// Shuffler interface so decks are reproducible under a seeded source.
package set
