package set

import (
	rand "math/rand/v2"
)

// Shuffler is the source of uniform draws used for shuffling.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Deck is an ordered pile of cards consumed from the front.
type Deck []Card

// globalShuffler draws from the math/rand/v2 top-level source.
type globalShuffler struct{}

func (globalShuffler) IntN(n int) int { return rand.IntN(n) }

// NewOrderedDeck returns all 81 cards in index order.
func NewOrderedDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for color := Red; color <= Purple; color++ {
		for shape := Circle; shape <= Triangle; shape++ {
			for filling := Blank; filling <= Striped; filling++ {
				for number := One; number <= Three; number++ {
					deck = append(deck, NewCard(color, shape, filling, number))
				}
			}
		}
	}
	return deck
}

// GenerateDeck returns a freshly shuffled deck of all 81 cards.
// A nil rng falls back to the global math/rand/v2 source.
func GenerateDeck(rng Shuffler) Deck {
	deck := NewOrderedDeck()
	Shuffle(deck, rng)
	return deck
}

// Shuffle permutes cards in place using Fisher-Yates.
func Shuffle(cards []Card, rng Shuffler) {
	if rng == nil {
		rng = globalShuffler{}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal takes count cards from the front of deck. Counts larger than the
// deck are clamped and negative counts deal nothing. Neither result shares
// memory with deck.
func Deal(deck Deck, count int) ([]Card, Deck) {
	if count < 0 {
		count = 0
	}
	if count > len(deck) {
		count = len(deck)
	}

	dealt := make([]Card, count)
	copy(dealt, deck[:count])

	remaining := make(Deck, len(deck)-count)
	copy(remaining, deck[count:])

	return dealt, remaining
}

// Contains reports whether card is in the deck.
func (d Deck) Contains(card Card) bool {
	return indexOf(d, card) >= 0
}

// Without returns a copy of the deck with the given cards removed.
func (d Deck) Without(cards ...Card) Deck {
	out := make(Deck, 0, len(d))
	for _, c := range d {
		if indexOf(cards, c) < 0 {
			out = append(out, c)
		}
	}
	return out
}

func indexOf(cards []Card, card Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}
