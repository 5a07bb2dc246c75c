package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/setgame/internal/game"
	"github.com/lox/setgame/set"
)

// Mode selects which game the TUI plays
type Mode int

const (
	ModeClassic Mode = iota
	ModePuzzle
)

func (m Mode) String() string {
	if m == ModePuzzle {
		return "puzzle"
	}
	return "classic"
}

// ParseMode converts a mode name from the command line
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "classic", "":
		return ModeClassic, nil
	case "puzzle":
		return ModePuzzle, nil
	default:
		return ModeClassic, fmt.Errorf("unknown mode %q (want classic or puzzle)", s)
	}
}

const (
	tickInterval = 50 * time.Millisecond
	displayTimes = 5
	maxMessages  = 200
)

type tickMsg time.Time

// Model is the Bubble Tea model for both game modes
type Model struct {
	mode    Mode
	classic *game.Classic
	puzzle  *game.Puzzle
	logger  *log.Logger

	input   textinput.Model
	logView viewport.Model

	messages []string
	hint     string

	quitting bool
}

// NewModel creates a model playing mode. Game options are passed through
// to the session.
func NewModel(mode Mode, logger *log.Logger, opts ...game.Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "letters to pick cards (a c f), hint, add, new, help, quit"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	vp := viewport.New(60, 6)

	m := &Model{
		mode:    mode,
		logger:  logger.WithPrefix("tui"),
		input:   ti,
		logView: vp,
	}

	opts = append([]game.Option{game.WithLogger(logger)}, opts...)
	switch mode {
	case ModePuzzle:
		m.puzzle = game.NewPuzzle(opts...)
		m.addMessage(InfoStyle, "Pick the card that completes the set.")
	default:
		m.classic = game.NewClassic(opts...)
		m.addMessage(InfoStyle, "Find three cards where every attribute is all the same or all different.")
	}
	return m
}

// Run starts the program and blocks until the player quits or ctx is done.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logView.Width = max(msg.Width-4, 10)

	case tickMsg:
		m.refresh()
		cmds = append(cmds, tick())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if m.processCommand(line) {
				m.quitting = true
				return m, tea.Quit
			}
		case "pgup":
			m.logView.HalfPageUp()
		case "pgdown":
			m.logView.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refresh lets the session expire cooldowns and, in puzzle mode, move on to
// the next round after a solve.
func (m *Model) refresh() {
	switch m.mode {
	case ModePuzzle:
		if m.puzzle.Refresh() {
			m.logger.Debug("Puzzle refreshed", "round", m.puzzle.Round(), "solved", m.puzzle.Solved())
		}
	default:
		m.classic.Refresh()
	}
}

// processCommand handles one line of input. It returns true when the
// player asked to quit.
func (m *Model) processCommand(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "help", "?":
		m.addMessage(InfoStyle, "Commands: card letters (e.g. 'a c f' or 'acf'), hint, add, new, quit")
		return false
	case "new":
		m.newGame()
		return false
	case "hint":
		m.showHint()
		return false
	case "add", "+":
		m.addCards()
		return false
	}

	for _, field := range fields {
		for _, idx := range parseSelection(field) {
			if idx < 0 {
				m.addMessage(ErrorStyle, fmt.Sprintf("Unknown card %q", field))
				return false
			}
			if !m.pick(idx) {
				return false
			}
		}
	}
	return false
}

// parseSelection turns "acf" or "13" into card indices, -1 marking junk.
func parseSelection(field string) []int {
	if idx, ok := ParseLabel(field); ok {
		return []int{idx}
	}
	out := make([]int, 0, len(field))
	for _, r := range field {
		idx, ok := ParseLabel(string(r))
		if !ok || r < 'a' || r > 'z' {
			return []int{-1}
		}
		out = append(out, idx)
	}
	return out
}

// pick applies a selection, returning false when further picks in the same
// command should be dropped.
func (m *Model) pick(idx int) bool {
	m.hint = ""
	if m.mode == ModePuzzle {
		return m.guess(idx)
	}

	outcome, err := m.classic.Toggle(idx)
	switch {
	case errors.Is(err, game.ErrCooldown):
		m.addMessage(WarningStyle, "Wait for the penalty to clear.")
		return false
	case err != nil:
		m.addMessage(ErrorStyle, err.Error())
		return false
	}

	switch outcome {
	case game.OutcomeSet:
		found := m.classic.Found()
		m.addMessage(SuccessStyle, fmt.Sprintf("Set! %s (score %d)", describeSet(found[len(found)-1]), m.classic.Score()))
		if m.classic.Over() {
			m.addMessage(SuccessStyle, fmt.Sprintf("Game over! You found %d sets. Type 'new' to play again.", m.classic.Score()))
		}
	case game.OutcomeWrong:
		m.addMessage(ErrorStyle, "Not a set.")
		return false
	}
	return true
}

func (m *Model) guess(idx int) bool {
	outcome, err := m.puzzle.Guess(idx)
	switch {
	case errors.Is(err, game.ErrCooldown):
		m.addMessage(WarningStyle, "Wait for the penalty to clear.")
		return false
	case errors.Is(err, game.ErrPuzzleSolved):
		return false
	case err != nil:
		m.addMessage(ErrorStyle, err.Error())
		return false
	}

	if outcome == game.OutcomeSet {
		m.addMessage(SuccessStyle, fmt.Sprintf("Correct! Solved in %s.", formatTime(m.puzzle.Elapsed())))
	} else {
		m.addMessage(ErrorStyle, "Not the third card.")
	}
	return false
}

func (m *Model) newGame() {
	m.hint = ""
	if m.mode == ModePuzzle {
		m.puzzle.Next()
		m.addMessage(InfoStyle, "New puzzle.")
		return
	}
	m.classic.NewGame()
	m.addMessage(InfoStyle, "New game dealt.")
}

func (m *Model) showHint() {
	if m.mode == ModePuzzle {
		m.addMessage(InfoStyle, "Each attribute of the answer is either shared by both cards or different from both.")
		return
	}
	m.hint = m.classic.Hint().Message
}

func (m *Model) addCards() {
	if m.mode == ModePuzzle {
		m.addMessage(WarningStyle, "No extra cards in puzzle mode.")
		return
	}
	n, err := m.classic.AddCards()
	if err != nil {
		m.addMessage(ErrorStyle, err.Error())
		return
	}
	m.hint = ""
	m.addMessage(InfoStyle, fmt.Sprintf("Added %d cards.", n))
}

func (m *Model) addMessage(style lipgloss.Style, text string) {
	m.messages = append(m.messages, style.Render(text))
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
	m.logView.SetContent(strings.Join(m.messages, "\n"))
	m.logView.GotoBottom()
}

// BestTimes returns the puzzle best times, or nil in classic mode.
func (m *Model) BestTimes() []time.Duration {
	if m.puzzle == nil {
		return nil
	}
	return m.puzzle.BestTimes()
}

// Messages returns the log lines shown under the board
func (m *Model) Messages() []string {
	return append([]string(nil), m.messages...)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(fmt.Sprintf("Set · %s", m.mode))

	var board, sidebar string
	if m.mode == ModePuzzle {
		board, sidebar = m.puzzleView()
	} else {
		board, sidebar = m.classicView()
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		PaneStyle.Render(board),
		PaneStyle.Width(30).Render(sidebar),
	)
	logPane := PaneStyle.Render(m.logView.View())
	inputPane := FocusPaneStyle.Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, top, logPane, inputPane)
}

func (m *Model) classicView() (string, string) {
	table := m.classic.Table()
	selected := set.Deck(m.classic.Selected())
	wrong := set.Deck(m.classic.WrongSelection())

	board := RenderGrid(table, 4, func(i int) CardState {
		switch {
		case wrong.Contains(table[i]):
			return CardWrong
		case selected.Contains(table[i]):
			return CardSelected
		default:
			return CardNormal
		}
	})

	var sb strings.Builder
	sb.WriteString(WarningStyle.Render(fmt.Sprintf("Score: %d", m.classic.Score())))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Deck: %d cards\n", m.classic.DeckRemaining()))
	sb.WriteString(fmt.Sprintf("Table: %d cards\n", len(table)))
	if d := m.classic.CooldownRemaining(); d > 0 {
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("Penalty: %s", formatTime(d))))
		sb.WriteString("\n")
	}
	if m.hint != "" {
		sb.WriteString("\n")
		sb.WriteString(InfoStyle.Render(m.hint))
		sb.WriteString("\n")
	}

	found := m.classic.Found()
	if len(found) > 0 {
		sb.WriteString("\nFound sets:\n")
		for _, s := range found[max(len(found)-5, 0):] {
			sb.WriteString("  " + describeSet(s) + "\n")
		}
	}
	return board, sb.String()
}

func (m *Model) puzzleView() (string, string) {
	targets := m.puzzle.Targets()
	options := m.puzzle.Options()
	solved := m.puzzle.Solved()
	wrong := m.puzzle.WrongGuess()

	targetRow := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderCard(targets[0], "1st", CardNormal),
		RenderCard(targets[1], "2nd", CardNormal),
		RenderCard(set.Card{Color: 255}, "3rd", CardNormal),
	)
	grid := RenderGrid(options, 3, func(i int) CardState {
		switch {
		case i == wrong:
			return CardWrong
		case solved && set.IsValidSet([]set.Card{targets[0], targets[1], options[i]}):
			return CardSolved
		default:
			return CardNormal
		}
	})
	board := lipgloss.JoinVertical(lipgloss.Left, targetRow, "", grid)

	var sb strings.Builder
	sb.WriteString(WarningStyle.Render(fmt.Sprintf("Score: %d", m.puzzle.Score())))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Round: %d\n", m.puzzle.Round()))
	sb.WriteString(fmt.Sprintf("Time: %s\n", formatTime(m.puzzle.Elapsed())))

	if times := m.puzzle.TopTimes(displayTimes); len(times) > 0 {
		sb.WriteString("\nBest times:\n")
		for i, d := range times {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, formatTime(d)))
		}
	}
	return board, sb.String()
}

func describeSet(s set.Set) string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = lipgloss.NewStyle().Foreground(cardColors[c.Color]).Render(Glyph(c))
	}
	return strings.Join(parts, " ")
}

func formatTime(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
