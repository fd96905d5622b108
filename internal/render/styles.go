// Package render formats cards, results and the starting-hand grid for the
// terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/rangecount/poker"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	CountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	PercentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	// Grid cells
	SuitedCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	OffsuitCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3B82F6"))

	PairCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#059669"))

	EmptyCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	CursorCell = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)
)

// DisableColor switches all rendering to plain ASCII.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// CardStyle returns the style for a card's suit colour. Black suits switch to
// white on dark backgrounds.
func CardStyle(s poker.Suit) lipgloss.Style {
	if s.IsRed() {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color()))
	}
	return lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: s.Color(), Dark: "#FAFAFA"})
}
