package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/setgame/set"
)

// CardState selects the border used when drawing a card
type CardState int

const (
	CardNormal CardState = iota
	CardSelected
	CardWrong
	CardSolved
)

// glyphs[shape][filling]
var glyphs = [3][3]rune{
	set.Circle:   {set.Blank: '○', set.Filled: '●', set.Striped: '◐'},
	set.Square:   {set.Blank: '□', set.Filled: '■', set.Striped: '◧'},
	set.Triangle: {set.Blank: '△', set.Filled: '▲', set.Striped: '◭'},
}

const cardWidth = 9

// Glyph returns the card's symbols without colour, e.g. "●●" for two
// filled circles.
func Glyph(c set.Card) string {
	if !c.Valid() {
		return "?"
	}
	return strings.Repeat(string(glyphs[c.Shape][c.Filling]), c.Number.Count())
}

// Label returns the selection label for position i: a-z, then numbers.
func Label(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return strconv.Itoa(i + 1)
}

// ParseLabel is the inverse of Label.
func ParseLabel(s string) (int, bool) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return int(s[0] - 'a'), true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// RenderCard draws a bordered card with its label above the symbols.
func RenderCard(c set.Card, label string, state CardState) string {
	border := cardBorder
	switch state {
	case CardSelected:
		border = cardSelectedBorder
	case CardWrong:
		border = cardWrongBorder
	case CardSolved:
		border = cardSolvedBorder
	}

	glyph := Glyph(c)
	if c.Valid() {
		glyph = lipgloss.NewStyle().Foreground(cardColors[c.Color]).Render(glyph)
	}

	body := lipgloss.JoinVertical(lipgloss.Center, LabelStyle.Render(label), glyph)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(body)
}

// RenderGrid lays cards out in rows of cols, labelled by position.
func RenderGrid(cards []set.Card, cols int, state func(i int) CardState) string {
	if len(cards) == 0 {
		return InfoStyle.Render("(no cards)")
	}
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, RenderCard(cards[i], Label(i), state(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
