package set

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a triple of cards that satisfies the set rule.
type Set [3]Card

// Key returns an identifier for the set that does not depend on card order.
func (s Set) Key() string {
	keys := []string{s[0].String(), s[1].String(), s[2].String()}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// Cards returns the set as a slice.
func (s Set) Cards() []Card {
	return []Card{s[0], s[1], s[2]}
}

func (s Set) String() string {
	return fmt.Sprintf("[%s %s %s]", s[0], s[1], s[2])
}

// attributeOK is true when three values are all equal or all different.
func attributeOK[T ~uint8](a, b, c T) bool {
	if a == b {
		return b == c
	}
	return a != c && b != c
}

// IsValidSet reports whether exactly three distinct cards form a set: for
// each attribute the values are either all the same or all different.
func IsValidSet(cards []Card) bool {
	if len(cards) != 3 {
		return false
	}
	return isSet(cards[0], cards[1], cards[2])
}

func isSet(a, b, c Card) bool {
	// Three copies of one card pass every attribute but are not a set.
	if a == b {
		return false
	}
	return attributeOK(a.Color, b.Color, c.Color) &&
		attributeOK(a.Shape, b.Shape, c.Shape) &&
		attributeOK(a.Filling, b.Filling, c.Filling) &&
		attributeOK(a.Number, b.Number, c.Number)
}

// FindAllSets returns every set among cards, enumerating index triples
// i < j < k in the order the cards are given.
func FindAllSets(cards []Card) []Set {
	sets := []Set{}
	eachSet(cards, func(s Set) bool {
		sets = append(sets, s)
		return true
	})
	return sets
}

// CountSets returns len(FindAllSets(cards)) without building the result.
func CountSets(cards []Card) int {
	n := 0
	eachSet(cards, func(Set) bool {
		n++
		return true
	})
	return n
}

// HasSet reports whether at least one set is present in cards.
func HasSet(cards []Card) bool {
	found := false
	eachSet(cards, func(Set) bool {
		found = true
		return false
	})
	return found
}

// eachSet calls fn for each set in (i, j, k) order until fn returns false.
func eachSet(cards []Card, fn func(Set) bool) {
	n := len(cards)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if isSet(cards[i], cards[j], cards[k]) {
					if !fn(Set{cards[i], cards[j], cards[k]}) {
						return
					}
				}
			}
		}
	}
}

// third returns the value completing a and b within a three value domain.
func third[T ~uint8](a, b T) T {
	if a == b {
		return a
	}
	// Domain values are 0, 1 and 2, so the missing one is 3 - a - b.
	return T(domainSize) - a - b
}

// FindThirdCard returns the unique card that forms a set with a and b.
// It panics if a and b are the same card.
func FindThirdCard(a, b Card) Card {
	if a == b {
		panic(fmt.Sprintf("set: FindThirdCard called with identical cards %s", a))
	}
	return Card{
		Color:   third(a.Color, b.Color),
		Shape:   third(a.Shape, b.Shape),
		Filling: third(a.Filling, b.Filling),
		Number:  third(a.Number, b.Number),
	}
}
