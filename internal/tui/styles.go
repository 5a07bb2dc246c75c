package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/setgame/set"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	FocusPaneStyle = PaneStyle.
			BorderForeground(lipgloss.Color("#04B575"))
)

// Card border colours by state
var (
	cardBorder         = lipgloss.Color("#626262")
	cardSelectedBorder = lipgloss.Color("#FFD700")
	cardWrongBorder    = lipgloss.Color("#FF6B6B")
	cardSolvedBorder   = lipgloss.Color("#04B575")
)

var cardColors = [...]lipgloss.Color{
	set.Red:    lipgloss.Color("#FF6B6B"),
	set.Green:  lipgloss.Color("#2ECC71"),
	set.Purple: lipgloss.Color("#A371F7"),
}

// DisableColor switches rendering to plain ASCII output for terminals (or
// users) that do not want colour.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
