package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/poker"
)

// Grid renders the 13x13 starting-hand grid. Suited hands sit above the
// diagonal and offsuit hands below it.
type Grid struct {
	Range analysis.Range
	// Remaining, when set, shows the surviving combos of each selected label.
	Remaining map[analysis.Label]int
	// Cursor is the highlighted grid index, or -1 for none.
	Cursor int
}

// cellWidth fits "AKo" plus a two digit count.
const cellWidth = 6

// Render returns the grid as 13 lines.
func (g Grid) Render() string {
	var sb strings.Builder
	for row := range poker.NumRanks {
		cells := make([]string, poker.NumRanks)
		for col := range poker.NumRanks {
			cells[col] = g.cell(analysis.GridLabel(row, col))
		}
		sb.WriteString(strings.Join(cells, " "))
		if row < poker.NumRanks-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (g Grid) cell(l analysis.Label) string {
	text := l.String()
	selected := g.Range.Contains(l)
	if n, ok := g.Remaining[l]; ok && selected {
		text = fmt.Sprintf("%-4s%2d", text, n)
	}
	text = fmt.Sprintf("%-*s", cellWidth, text)

	style := EmptyCell
	if selected {
		style = cellStyle(l)
	}
	if l.Index() == g.Cursor {
		style = CursorCell
	}
	return style.Render(text)
}

func cellStyle(l analysis.Label) lipgloss.Style {
	switch l.Kind {
	case analysis.Suited:
		return SuitedCell
	case analysis.Offsuit:
		return OffsuitCell
	default:
		return PairCell
	}
}
