package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{
			name:     "hyphenated",
			input:    "red-circle-blank-1",
			expected: Card{Color: Red, Shape: Circle, Filling: Blank, Number: One},
		},
		{
			name:     "commas and mixed case",
			input:    "Green,Square,STRIPED,3",
			expected: Card{Color: Green, Shape: Square, Filling: Striped, Number: Three},
		},
		{
			name:     "spaces",
			input:    "  purple triangle filled 2 ",
			expected: Card{Color: Purple, Shape: Triangle, Filling: Filled, Number: Two},
		},
		{
			name:     "slashes",
			input:    "red/square/filled/2",
			expected: Card{Color: Red, Shape: Square, Filling: Filled, Number: Two},
		},
		{name: "unknown color", input: "blue-circle-blank-1", wantErr: true},
		{name: "unknown shape", input: "red-oval-blank-1", wantErr: true},
		{name: "unknown filling", input: "red-circle-solid-1", wantErr: true},
		{name: "unknown number", input: "red-circle-blank-4", wantErr: true},
		{name: "too few attributes", input: "red-circle-blank", wantErr: true},
		{name: "too many attributes", input: "red-circle-blank-1-1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("red-circle-blank-1 green-square-filled-2\tpurple-triangle-striped-3")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Color: Red, Shape: Circle, Filling: Blank, Number: One},
		{Color: Green, Shape: Square, Filling: Filled, Number: Two},
		{Color: Purple, Shape: Triangle, Filling: Striped, Number: Three},
	}, cards)

	empty, err := ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseCards("red-circle-blank-1 nope")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCardStringRoundTrip(t *testing.T) {
	for _, card := range NewOrderedDeck() {
		parsed, err := ParseCard(card.String())
		require.NoError(t, err, card.String())
		assert.Equal(t, card, parsed)
	}
}

func TestCardString(t *testing.T) {
	card := NewCard(Purple, Triangle, Striped, Three)
	assert.Equal(t, "purple-triangle-striped-3", card.String())
	assert.Equal(t, "?", Color(7).String())
	assert.Equal(t, 3, Three.Count())
	assert.Equal(t, 1, One.Count())
}

func TestCardIndex(t *testing.T) {
	seen := make(map[int]bool)
	for i, card := range NewOrderedDeck() {
		assert.Equal(t, i, card.Index())
		assert.Equal(t, card, CardAt(i))
		seen[card.Index()] = true
	}
	assert.Len(t, seen, DeckSize)

	assert.Panics(t, func() { CardAt(-1) })
	assert.Panics(t, func() { CardAt(DeckSize) })
}

func TestCardValid(t *testing.T) {
	assert.True(t, MustParseCard("red-circle-blank-1").Valid())
	assert.False(t, Card{Color: 3}.Valid())
	assert.False(t, Card{Number: 200}.Valid())
	assert.Panics(t, func() { MustParseCard("bogus") })
}
