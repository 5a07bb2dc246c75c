package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/setgame/internal/tui"
	"github.com/lox/setgame/set"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	yesStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	noStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	colorStyles = [...]lipgloss.Style{
		set.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		set.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		set.Purple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
)

func glyph(c set.Card) string {
	return colorStyles[c.Color].Render(tui.Glyph(c))
}

// printCards writes one labelled card per line.
func printCards(w io.Writer, cards []set.Card) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range cards {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", tui.Label(i), c, glyph(c))
	}
	tw.Flush()
}

// printSets writes each set on its own line, numbered from 1.
func printSets(w io.Writer, sets []set.Set) {
	if len(sets) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no sets"))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, s := range sets {
		names := make([]string, len(s))
		glyphs := make([]string, len(s))
		for j, c := range s {
			names[j] = c.String()
			glyphs[j] = glyph(c)
		}
		fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, strings.Join(names, "  "), strings.Join(glyphs, " "))
	}
	tw.Flush()
}

func parseArgs(args []string) ([]set.Card, error) {
	cards := make([]set.Card, 0, len(args))
	for _, arg := range args {
		c, err := set.ParseCard(arg)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
