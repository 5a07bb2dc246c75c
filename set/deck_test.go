package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/setgame/internal/randutil"
)

func TestGenerateDeck(t *testing.T) {
	deck := GenerateDeck(randutil.New(12345))
	require.Len(t, deck, DeckSize)

	seen := make(map[Card]int)
	for _, card := range deck {
		require.True(t, card.Valid(), card.String())
		seen[card]++
	}
	assert.Len(t, seen, DeckSize)

	for _, card := range NewOrderedDeck() {
		assert.Equal(t, 1, seen[card], "card %s should appear exactly once", card)
	}
}

func TestGenerateDeckDeterministic(t *testing.T) {
	a := GenerateDeck(randutil.New(7))
	b := GenerateDeck(randutil.New(7))
	c := GenerateDeck(randutil.New(8))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, NewOrderedDeck(), a)
}

func TestGenerateDeckNilShuffler(t *testing.T) {
	deck := GenerateDeck(nil)
	require.Len(t, deck, DeckSize)
	assert.ElementsMatch(t, NewOrderedDeck(), deck)
}

func TestGenerateDeckIndependent(t *testing.T) {
	rng := randutil.New(3)
	a := GenerateDeck(rng)
	b := GenerateDeck(rng)
	a[0] = Card{}
	assert.Len(t, b, DeckSize)
	assert.ElementsMatch(t, NewOrderedDeck(), b)
}

func TestShuffleUniform(t *testing.T) {
	rng := randutil.New(2024)
	base := []Card{CardAt(0), CardAt(1), CardAt(2)}
	counts := make(map[[3]int]int)

	const rounds = 60000
	for i := 0; i < rounds; i++ {
		cards := append([]Card(nil), base...)
		Shuffle(cards, rng)
		counts[[3]int{cards[0].Index(), cards[1].Index(), cards[2].Index()}]++
	}

	require.Len(t, counts, 6, "every permutation of three cards should appear")
	expected := rounds / 6
	for perm, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.05, "permutation %v", perm)
	}
}

func TestShuffleFirstPositionUniform(t *testing.T) {
	rng := randutil.New(99)
	counts := make([]int, DeckSize)

	const rounds = 81 * 400
	for i := 0; i < rounds; i++ {
		counts[GenerateDeck(rng)[0].Index()]++
	}

	for idx, n := range counts {
		assert.InDelta(t, 400, n, 100, "card %s at top of deck", CardAt(idx))
	}
}

func TestDeal(t *testing.T) {
	deck := GenerateDeck(randutil.New(1))

	tests := []struct {
		name          string
		count         int
		wantDealt     int
		wantRemaining int
	}{
		{name: "table", count: 12, wantDealt: 12, wantRemaining: 69},
		{name: "zero", count: 0, wantDealt: 0, wantRemaining: 81},
		{name: "negative", count: -5, wantDealt: 0, wantRemaining: 81},
		{name: "everything", count: 81, wantDealt: 81, wantRemaining: 0},
		{name: "clamped", count: 200, wantDealt: 81, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealt, remaining := Deal(deck, tt.count)
			require.Len(t, dealt, tt.wantDealt)
			require.Len(t, remaining, tt.wantRemaining)
			assert.Equal(t, []Card(deck[:tt.wantDealt]), dealt)
			assert.Equal(t, deck[tt.wantDealt:], remaining)
		})
	}
}

func TestDealDoesNotAlias(t *testing.T) {
	deck := NewOrderedDeck()
	original := append(Deck(nil), deck...)

	dealt, remaining := Deal(deck, 3)
	dealt[0] = CardAt(80)
	remaining[0] = CardAt(80)

	assert.Equal(t, original, deck)
}

func TestDealEmptyDeck(t *testing.T) {
	dealt, remaining := Deal(nil, 3)
	assert.Empty(t, dealt)
	assert.Empty(t, remaining)
}

func TestDeckWithout(t *testing.T) {
	deck := NewOrderedDeck()
	a, b := CardAt(0), CardAt(40)

	rest := deck.Without(a, b)
	assert.Len(t, rest, DeckSize-2)
	assert.False(t, rest.Contains(a))
	assert.False(t, rest.Contains(b))
	assert.True(t, deck.Contains(a))
}
