// Package tui is an interactive range editor: type notation or toggle grid
// cells, set hero and board cards, and watch the combo breakdown update.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/internal/render"
	"github.com/lox/rangecount/internal/session"
	"github.com/lox/rangecount/poker"
)

// Focus panes, in tab order.
const (
	focusRange = iota
	focusCards
	focusGrid
	numPanes
)

// TUIModel represents the Bubble Tea model for the range editor
type TUIModel struct {
	session *session.Session
	logger  *log.Logger

	// UI components
	rangeInput textinput.Model
	cardsInput textinput.Model

	// State
	focus    int
	cursor   int
	result   analysis.Result
	status   string
	err      error
	quitting bool

	width  int
	height int
}

func newInput(placeholder, prompt string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 400
	ti.Width = 80
	ti.PromptStyle = promptStyle
	ti.TextStyle = textStyle
	ti.Prompt = prompt
	return ti
}

// NewTUIModel creates a model editing sess.
func NewTUIModel(sess *session.Session, logger *log.Logger) *TUIModel {
	m := &TUIModel{
		session:    sess,
		logger:     logger.WithPrefix("tui"),
		rangeInput: newInput("22+, A2s+, KTo+, T9s-87s", "range> "),
		cardsInput: newInput("AhKd | Qh7h2c", "cards> "),
	}
	m.rangeInput.SetValue(sess.Range.String())
	m.cardsInput.SetValue(formatCardsInput(sess.Hero(), sess.Board()))
	m.rangeInput.Focus()
	m.recompute()
	return m
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(sess *session.Session, logger *log.Logger) error {
	_, err := tea.NewProgram(NewTUIModel(sess, logger), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focus + 1) % numPanes)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + numPanes - 1) % numPanes)
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}
		if m.focus == focusGrid {
			m.gridKey(msg.String())
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusRange:
		m.rangeInput, cmd = m.rangeInput.Update(msg)
	case focusCards:
		m.cardsInput, cmd = m.cardsInput.Update(msg)
	}
	return m, cmd
}

func (m *TUIModel) setFocus(pane int) {
	m.focus = pane
	m.rangeInput.Blur()
	m.cardsInput.Blur()
	switch pane {
	case focusRange:
		m.rangeInput.Focus()
	case focusCards:
		m.cardsInput.Focus()
	}
}

// submit applies the focused pane's contents.
func (m *TUIModel) submit() {
	m.status, m.err = "", nil
	switch m.focus {
	case focusRange:
		if skipped := m.session.ApplyText(m.rangeInput.Value()); len(skipped) > 0 {
			m.status = "skipped: " + strings.Join(skipped, ", ")
		}
	case focusCards:
		hero, board, err := parseCardsInput(m.cardsInput.Value())
		if err != nil {
			m.err = err
			return
		}
		if rejected := m.session.SetCards(hero, board); len(rejected) > 0 {
			m.status = "ignored: " + poker.FormatCards(rejected)
		}
		m.cardsInput.SetValue(formatCardsInput(m.session.Hero(), m.session.Board()))
	case focusGrid:
		m.toggleCursor()
	}
	m.recompute()
}

// gridKey handles cursor movement and suit filter keys on the grid.
func (m *TUIModel) gridKey(key string) {
	row, col := m.cursor/poker.NumRanks, m.cursor%poker.NumRanks
	switch key {
	case "up", "k":
		row = max(row-1, 0)
	case "down", "j":
		row = min(row+1, poker.NumRanks-1)
	case "left", "h":
		col = max(col-1, 0)
	case "right", "l":
		col = min(col+1, poker.NumRanks-1)
	case " ", "space", "x":
		m.toggleCursor()
		m.recompute()
	case "c", "d", "s", "H":
		suit, _ := poker.ParseSuit(strings.ToLower(key)[0])
		m.session.ToggleSuit(suit)
		m.recompute()
	case "r":
		m.session.ResetSuits()
		m.recompute()
	case "backspace", "delete":
		m.session.ClearRange()
		m.rangeInput.SetValue("")
		m.recompute()
	}
	m.cursor = row*poker.NumRanks + col
}

func (m *TUIModel) toggleCursor() {
	m.session.ToggleLabel(analysis.GridLabel(m.cursor/poker.NumRanks, m.cursor%poker.NumRanks))
	m.rangeInput.SetValue(m.session.Range.String())
}

func (m *TUIModel) recompute() {
	res, err := m.session.Evaluate(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.result = res
}

// Result returns the latest aggregation.
func (m *TUIModel) Result() analysis.Result {
	return m.result
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	grid := render.Grid{Range: m.session.Range, Remaining: m.result.PerLabel, Cursor: -1}
	if m.focus == focusGrid {
		grid.Cursor = m.cursor
	}

	var summary strings.Builder
	if err := render.Summary(&summary, m.session.Input(), m.session.Hero(), m.result); err != nil {
		m.logger.Error("Failed to render summary", "error", err)
	}

	inputs := lipgloss.JoinVertical(lipgloss.Left, m.rangeInput.View(), m.cardsInput.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(focusGrid, grid.Render()),
		m.pane(-1, strings.TrimRight(summary.String(), "\n")),
	)

	var status string
	switch {
	case m.err != nil:
		status = ErrorStyle.Render(m.err.Error())
	case m.status != "":
		status = WarningStyle.Render(m.status)
	}

	help := HelpStyle.Render("tab focus • enter apply • grid: arrows/hjkl move, space toggle, c/d/H/s suits, r reset suits, del clear • esc quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("rangecount"),
		m.pane(focusRange, inputs),
		body,
		status,
		help,
	)
}

func (m *TUIModel) pane(id int, content string) string {
	focused := m.focus == id || (id == focusRange && m.focus == focusCards)
	if focused {
		return FocusedPaneStyle.Render(content)
	}
	return PaneStyle.Render(content)
}

// parseCardsInput reads "hero | board". Without a bar every card is a hero card.
func parseCardsInput(s string) (hero, board []poker.Card, err error) {
	heroText, boardText, _ := strings.Cut(s, "|")
	if hero, err = poker.ParseCards(heroText); err != nil {
		return nil, nil, fmt.Errorf("hero: %w", err)
	}
	if board, err = poker.ParseCards(boardText); err != nil {
		return nil, nil, fmt.Errorf("board: %w", err)
	}
	return hero, board, nil
}

func formatCardsInput(hero, board []poker.Card) string {
	if len(hero) == 0 && len(board) == 0 {
		return ""
	}
	return strings.TrimSpace(poker.FormatCards(hero) + " | " + poker.FormatCards(board))
}
