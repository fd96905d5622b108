// Package analysis turns range notation into starting-hand labels, expands
// labels into concrete combos and aggregates made-hand and draw statistics
// for a range against a board.
package analysis

import (
	"fmt"
	"strings"

	"github.com/lox/rangecount/poker"
)

// Kind distinguishes the three shapes of a starting hand.
type Kind uint8

const (
	PairKind Kind = iota
	Suited
	Offsuit
)

func (k Kind) String() string {
	switch k {
	case PairKind:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// NumLabels is the number of cells in the 13x13 starting-hand grid.
const NumLabels = poker.NumRanks * poker.NumRanks

// Label is one cell of the starting-hand grid: a pair ("QQ"), a suited hand
// ("AKs") or an offsuit hand ("AKo"). High is never below Low.
type Label struct {
	High poker.Rank
	Low  poker.Rank
	Kind Kind
}

// NewLabel builds a canonical label from two ranks in either order. A pair
// must use PairKind and a non-pair must be Suited or Offsuit; anything else
// reports false.
func NewLabel(a, b poker.Rank, kind Kind) (Label, bool) {
	if a > poker.Ace || b > poker.Ace {
		return Label{}, false
	}
	if a < b {
		a, b = b, a
	}
	switch {
	case a == b && kind == PairKind:
	case a != b && (kind == Suited || kind == Offsuit):
	default:
		return Label{}, false
	}
	return Label{High: a, Low: b, Kind: kind}, true
}

// MustLabel parses a label and panics on error (for tests and static tables).
func MustLabel(s string) Label {
	l, err := ParseLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLabel parses a single label such as "TT", "AKs" or "kqo". Ranks may be
// given in either order.
func ParseLabel(s string) (Label, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 && len(s) != 3 {
		return Label{}, fmt.Errorf("invalid label %q", s)
	}
	a, okA := poker.ParseRank(s[0])
	b, okB := poker.ParseRank(s[1])
	if !okA || !okB {
		return Label{}, fmt.Errorf("invalid rank in label %q", s)
	}

	kind := PairKind
	if len(s) == 3 {
		switch s[2] {
		case 's', 'S':
			kind = Suited
		case 'o', 'O':
			kind = Offsuit
		default:
			return Label{}, fmt.Errorf("invalid suited/offsuit marker in label %q", s)
		}
	}

	l, ok := NewLabel(a, b, kind)
	if !ok {
		return Label{}, fmt.Errorf("invalid label %q", s)
	}
	return l, nil
}

// String returns the canonical notation, high rank first.
func (l Label) String() string {
	switch l.Kind {
	case Suited:
		return l.High.String() + l.Low.String() + "s"
	case Offsuit:
		return l.High.String() + l.Low.String() + "o"
	default:
		return l.High.String() + l.Low.String()
	}
}

// IsPair reports whether the label is a pocket pair.
func (l Label) IsPair() bool {
	return l.Kind == PairKind
}

// IsSuited reports whether the label is a suited hand.
func (l Label) IsSuited() bool {
	return l.Kind == Suited
}

// GridPos returns the label's row and column in the grid. Row and column 0
// are the Ace; suited hands sit above the diagonal, offsuit hands below it.
func (l Label) GridPos() (row, col int) {
	hi := int(poker.Ace - l.High)
	lo := int(poker.Ace - l.Low)
	switch l.Kind {
	case Suited:
		return hi, lo
	case Offsuit:
		return lo, hi
	default:
		return hi, hi
	}
}

// Index returns the row-major grid index in [0, 169).
func (l Label) Index() int {
	row, col := l.GridPos()
	return row*poker.NumRanks + col
}

// GridLabel returns the label at row, col of the grid.
func GridLabel(row, col int) Label {
	hi := poker.Ace - poker.Rank(min(row, col))
	lo := poker.Ace - poker.Rank(max(row, col))
	switch {
	case row == col:
		return Label{High: hi, Low: hi, Kind: PairKind}
	case col > row:
		return Label{High: hi, Low: lo, Kind: Suited}
	default:
		return Label{High: hi, Low: lo, Kind: Offsuit}
	}
}

// labelAt is the inverse of Label.Index.
func labelAt(index int) Label {
	return GridLabel(index/poker.NumRanks, index%poker.NumRanks)
}

// AllLabels returns the 169 labels in grid order (row-major, AA first).
func AllLabels() []Label {
	labels := make([]Label, NumLabels)
	for i := range labels {
		labels[i] = labelAt(i)
	}
	return labels
}
