package set

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Color is the colour attribute of a card.
type Color uint8

const (
	Red Color = iota
	Green
	Purple
)

// Shape is the shape attribute of a card.
type Shape uint8

const (
	Circle Shape = iota
	Square
	Triangle
)

// Filling is the shading attribute of a card.
type Filling uint8

const (
	Blank Filling = iota
	Filled
	Striped
)

// Number is the count attribute of a card. The zero value is One.
type Number uint8

const (
	One Number = iota
	Two
	Three
)

// Every attribute domain has exactly this many values.
const domainSize = 3

// DeckSize is the number of distinct cards.
const DeckSize = domainSize * domainSize * domainSize * domainSize

var (
	colorNames   = [domainSize]string{"red", "green", "purple"}
	shapeNames   = [domainSize]string{"circle", "square", "triangle"}
	fillingNames = [domainSize]string{"blank", "filled", "striped"}
	numberNames  = [domainSize]string{"1", "2", "3"}
)

func (c Color) Valid() bool   { return c < domainSize }
func (s Shape) Valid() bool   { return s < domainSize }
func (f Filling) Valid() bool { return f < domainSize }
func (n Number) Valid() bool  { return n < domainSize }

func (c Color) String() string {
	if !c.Valid() {
		return "?"
	}
	return colorNames[c]
}

func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return shapeNames[s]
}

func (f Filling) String() string {
	if !f.Valid() {
		return "?"
	}
	return fillingNames[f]
}

func (n Number) String() string {
	if !n.Valid() {
		return "?"
	}
	return numberNames[n]
}

// Count returns how many symbols a card with this number shows (1-3).
func (n Number) Count() int {
	return int(n) + 1
}

// Card is a single Set card. Cards are plain values and compare with ==.
type Card struct {
	Color   Color
	Shape   Shape
	Filling Filling
	Number  Number
}

// NewCard creates a card from its four attributes
func NewCard(color Color, shape Shape, filling Filling, number Number) Card {
	return Card{Color: color, Shape: shape, Filling: filling, Number: number}
}

// String returns the card as "color-shape-filling-number", e.g. "red-circle-blank-1"
func (c Card) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", c.Color, c.Shape, c.Filling, c.Number)
}

// Valid reports whether every attribute holds a value from its domain.
func (c Card) Valid() bool {
	return c.Color.Valid() && c.Shape.Valid() && c.Filling.Valid() && c.Number.Valid()
}

// Index returns the position of the card in the ordered deck (0-80).
// Color is the most significant digit, Number the least.
func (c Card) Index() int {
	return ((int(c.Color)*domainSize+int(c.Shape))*domainSize+int(c.Filling))*domainSize + int(c.Number)
}

// CardAt is the inverse of Card.Index.
func CardAt(index int) Card {
	if index < 0 || index >= DeckSize {
		panic(fmt.Sprintf("card index %d out of range", index))
	}
	n := Number(index % domainSize)
	index /= domainSize
	f := Filling(index % domainSize)
	index /= domainSize
	s := Shape(index % domainSize)
	index /= domainSize
	return Card{Color: Color(index), Shape: s, Filling: f, Number: n}
}

// ParseCard parses a card written as four attribute values, e.g.
// "red-circle-blank-1", "Green,Square,Striped,3" or "purple triangle filled 2".
// Attributes must appear in color, shape, filling, number order.
func ParseCard(s string) (Card, error) {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), func(r rune) bool {
		switch r {
		case '-', ',', '/', ' ', '\t':
			return true
		}
		return false
	})
	if len(fields) != 4 {
		return Card{}, fmt.Errorf("%w %q: expected 4 attributes, got %d", ErrInvalidCard, s, len(fields))
	}

	color, ok := lookup(colorNames, fields[0])
	if !ok {
		return Card{}, fmt.Errorf("%w %q: unknown color %q", ErrInvalidCard, s, fields[0])
	}
	shape, ok := lookup(shapeNames, fields[1])
	if !ok {
		return Card{}, fmt.Errorf("%w %q: unknown shape %q", ErrInvalidCard, s, fields[1])
	}
	filling, ok := lookup(fillingNames, fields[2])
	if !ok {
		return Card{}, fmt.Errorf("%w %q: unknown filling %q", ErrInvalidCard, s, fields[2])
	}
	number, ok := lookup(numberNames, fields[3])
	if !ok {
		return Card{}, fmt.Errorf("%w %q: unknown number %q", ErrInvalidCard, s, fields[3])
	}

	return Card{Color: Color(color), Shape: Shape(shape), Filling: Filling(filling), Number: Number(number)}, nil
}

// ParseCards parses whitespace separated cards in the hyphenated form.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCard is like ParseCard but panics on error. Intended for tests
// and static tables.
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}

func lookup(names [domainSize]string, value string) (uint8, bool) {
	for i, name := range names {
		if name == value {
			return uint8(i), true
		}
	}
	return 0, false
}
