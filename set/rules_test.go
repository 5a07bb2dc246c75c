package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/setgame/internal/randutil"
)

func cards(t *testing.T, s string) []Card {
	t.Helper()
	out, err := ParseCards(s)
	require.NoError(t, err)
	return out
}

func TestIsValidSet(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  bool
	}{
		{
			name:  "color differs, rest same",
			cards: "red-circle-blank-1 green-circle-blank-1 purple-circle-blank-1",
			want:  true,
		},
		{
			name:  "all attributes differ",
			cards: "red-circle-blank-1 green-square-filled-2 purple-triangle-striped-3",
			want:  true,
		},
		{
			name:  "two same one different shape",
			cards: "red-circle-blank-1 red-circle-blank-2 red-square-blank-3",
			want:  false,
		},
		{
			name:  "two same one different number",
			cards: "red-circle-blank-1 green-square-filled-1 purple-triangle-striped-2",
			want:  false,
		},
		{
			name:  "two same one different filling only",
			cards: "red-circle-blank-1 green-square-blank-2 purple-triangle-striped-3",
			want:  false,
		},
		{
			name:  "duplicate card",
			cards: "red-circle-blank-1 red-circle-blank-1 red-circle-blank-2",
			want:  false,
		},
		{
			name:  "three copies",
			cards: "red-circle-blank-1 red-circle-blank-1 red-circle-blank-1",
			want:  false,
		},
		{name: "empty", cards: "", want: false},
		{name: "two cards", cards: "red-circle-blank-1 green-circle-blank-1", want: false},
		{
			name:  "four cards",
			cards: "red-circle-blank-1 green-circle-blank-1 purple-circle-blank-1 red-square-blank-1",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSet(cards(t, tt.cards)))
		})
	}
}

func TestIsValidSetOrderIndependent(t *testing.T) {
	c := cards(t, "red-circle-blank-1 green-square-filled-2 purple-triangle-striped-3")
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		assert.True(t, IsValidSet([]Card{c[p[0]], c[p[1]], c[p[2]]}), "permutation %v", p)
	}
}

func TestValidSetsHaveNoTwoOfAKind(t *testing.T) {
	deck := NewOrderedDeck()
	for _, s := range FindAllSets(deck) {
		distinct := func(a, b, c int) int {
			m := map[int]struct{}{a: {}, b: {}, c: {}}
			return len(m)
		}
		assert.NotEqual(t, 2, distinct(int(s[0].Color), int(s[1].Color), int(s[2].Color)))
		assert.NotEqual(t, 2, distinct(int(s[0].Shape), int(s[1].Shape), int(s[2].Shape)))
		assert.NotEqual(t, 2, distinct(int(s[0].Filling), int(s[1].Filling), int(s[2].Filling)))
		assert.NotEqual(t, 2, distinct(int(s[0].Number), int(s[1].Number), int(s[2].Number)))
	}
}

func TestFullDeckHas1080Sets(t *testing.T) {
	deck := GenerateDeck(randutil.New(5))
	assert.Len(t, FindAllSets(deck), 1080)
	assert.Equal(t, 1080, CountSets(deck))
	assert.True(t, HasSet(deck))

	n := 0
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			for k := j + 1; k < len(deck); k++ {
				if IsValidSet([]Card{deck[i], deck[j], deck[k]}) {
					n++
				}
			}
		}
	}
	assert.Equal(t, 1080, n)
}

func TestFindAllSetsSmallInputs(t *testing.T) {
	assert.Empty(t, FindAllSets(nil))
	assert.NotNil(t, FindAllSets(nil))
	assert.Empty(t, FindAllSets(cards(t, "red-circle-blank-1")))
	assert.Empty(t, FindAllSets(cards(t, "red-circle-blank-1 green-circle-blank-1")))
	assert.False(t, HasSet(nil))
	assert.Zero(t, CountSets(nil))
}

func TestFindAllSetsOrder(t *testing.T) {
	table := cards(t, "red-circle-blank-1 green-circle-blank-1 red-square-blank-1 purple-circle-blank-1 red-triangle-blank-1 green-square-filled-2")

	got := FindAllSets(table)
	require.Len(t, got, 2)
	// (0,1,3) comes before (0,2,4)
	assert.Equal(t, Set{table[0], table[1], table[3]}, got[0])
	assert.Equal(t, Set{table[0], table[2], table[4]}, got[1])
}

func TestFindAllSetsNoSet(t *testing.T) {
	// Four cards drawn so that no triple is a set.
	table := cards(t, "red-circle-blank-1 red-circle-blank-2 red-circle-filled-1 red-circle-filled-2")
	assert.Empty(t, FindAllSets(table))
	assert.False(t, HasSet(table))
}

func TestFindAllSetsDoesNotMutate(t *testing.T) {
	table, _ := Deal(GenerateDeck(randutil.New(11)), 12)
	before := append([]Card(nil), table...)
	FindAllSets(table)
	assert.Equal(t, before, table)
}

func TestSetKey(t *testing.T) {
	c := cards(t, "red-circle-blank-1 green-circle-blank-1 purple-circle-blank-1")
	a := Set{c[0], c[1], c[2]}
	b := Set{c[2], c[0], c[1]}
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "green-circle-blank-1|purple-circle-blank-1|red-circle-blank-1", a.Key())
	assert.Equal(t, c, a.Cards())
}

func TestFindThirdCard(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"red-circle-blank-1", "red-square-blank-2", "red-triangle-blank-3"},
		{"red-circle-blank-1", "green-circle-blank-1", "purple-circle-blank-1"},
		{"green-square-filled-2", "purple-triangle-striped-3", "red-circle-blank-1"},
		{"purple-triangle-striped-3", "purple-triangle-striped-1", "purple-triangle-striped-2"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"+"+tt.b, func(t *testing.T) {
			a, b := MustParseCard(tt.a), MustParseCard(tt.b)
			assert.Equal(t, MustParseCard(tt.want), FindThirdCard(a, b))
			assert.Equal(t, MustParseCard(tt.want), FindThirdCard(b, a))
		})
	}
}

func TestFindThirdCardAllPairs(t *testing.T) {
	deck := NewOrderedDeck()
	for i, a := range deck {
		for _, b := range deck[i+1:] {
			c := FindThirdCard(a, b)
			require.True(t, IsValidSet([]Card{a, b, c}), "%s %s %s", a, b, c)
			require.NotEqual(t, a, c)
			require.NotEqual(t, b, c)
			require.True(t, c.Valid())
			require.Equal(t, c, FindThirdCard(a, b))
		}
	}
}

func TestFindThirdCardIdenticalPanics(t *testing.T) {
	a := MustParseCard("red-circle-blank-1")
	assert.Panics(t, func() { FindThirdCard(a, a) })
}
