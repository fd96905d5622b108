package analysis

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/lox/rangecount/poker"
)

// Combo is one concrete two-card realisation of a label. Hi holds the
// label's high rank (for pairs, the lower-indexed suit).
type Combo struct {
	Hi poker.Card
	Lo poker.Card
}

// Hand returns the combo as a card set.
func (c Combo) Hand() poker.Hand {
	return poker.NewHand(c.Hi, c.Lo)
}

// Cards returns the two cards, high card first.
func (c Combo) Cards() []poker.Card {
	return []poker.Card{c.Hi, c.Lo}
}

// String returns the combo in card notation, e.g. "AhKh".
func (c Combo) String() string {
	return c.Hi.String() + c.Lo.String()
}

// comboTable maps every grid index to its combos. It is built once on first
// use and never modified afterwards.
var comboTable = sync.OnceValue(func() *[NumLabels][]Combo {
	var table [NumLabels][]Combo
	for i := range table {
		table[i] = buildCombos(labelAt(i))
	}
	return &table
})

func buildCombos(l Label) []Combo {
	var combos []Combo
	switch l.Kind {
	case PairKind: // 6 combos
		for s1 := range poker.Suit(poker.NumSuits) {
			for s2 := s1 + 1; s2 < poker.NumSuits; s2++ {
				combos = append(combos, Combo{poker.NewCard(l.High, s1), poker.NewCard(l.Low, s2)})
			}
		}
	case Suited: // 4 combos
		for s := range poker.Suit(poker.NumSuits) {
			combos = append(combos, Combo{poker.NewCard(l.High, s), poker.NewCard(l.Low, s)})
		}
	default: // 12 combos
		for s1 := range poker.Suit(poker.NumSuits) {
			for s2 := range poker.Suit(poker.NumSuits) {
				if s1 != s2 {
					combos = append(combos, Combo{poker.NewCard(l.High, s1), poker.NewCard(l.Low, s2)})
				}
			}
		}
	}
	return combos
}

// LabelCombos returns every combo of a label, ignoring blockers and suit
// filters. The result is a fresh copy of the cached table entry.
func LabelCombos(l Label) []Combo {
	return slices.Clone(comboTable()[l.Index()])
}

// SuitFilter is the set of suits counted for suited labels. Pairs and
// offsuit labels ignore it.
type SuitFilter uint8

// AllSuits enables every suit.
const AllSuits SuitFilter = 1<<poker.NumSuits - 1

// SuitsOf builds a filter from individual suits.
func SuitsOf(suits ...poker.Suit) SuitFilter {
	var f SuitFilter
	for _, s := range suits {
		f |= 1 << s
	}
	return f
}

// ParseSuitFilter parses suit letters such as "cdhs" or "h". An empty string
// is an empty filter.
func ParseSuitFilter(s string) (SuitFilter, error) {
	var f SuitFilter
	for i := 0; i < len(s); i++ {
		suit, ok := poker.ParseSuit(s[i])
		if !ok {
			return 0, fmt.Errorf("invalid suit %q in filter %q", s[i], s)
		}
		f |= 1 << suit
	}
	return f, nil
}

// Has reports whether the suit is enabled.
func (f SuitFilter) Has(s poker.Suit) bool {
	return f&(1<<s) != 0
}

// Toggle flips one suit.
func (f SuitFilter) Toggle(s poker.Suit) SuitFilter {
	return f ^ (1 << s)
}

// String lists the enabled suit letters in cdhs order.
func (f SuitFilter) String() string {
	var sb strings.Builder
	for s := range poker.Suit(poker.NumSuits) {
		if f.Has(s) {
			sb.WriteByte(s.Char())
		}
	}
	return sb.String()
}

// allowed reports whether a combo of label l survives blockers and the filter.
func allowed(l Label, c Combo, used poker.Hand, filter SuitFilter) bool {
	if l.Kind == Suited && !filter.Has(c.Hi.Suit()) {
		return false
	}
	return !used.Overlaps(c.Hand())
}

// SurvivingCombos returns the combos of l that touch no used card and, for
// suited labels, whose suit is enabled in filter.
func SurvivingCombos(l Label, used poker.Hand, filter SuitFilter) []Combo {
	var out []Combo
	for _, c := range comboTable()[l.Index()] {
		if allowed(l, c, used, filter) {
			out = append(out, c)
		}
	}
	return out
}

// CountSurviving returns len(SurvivingCombos(l, used, filter)) without allocating.
func CountSurviving(l Label, used poker.Hand, filter SuitFilter) int {
	n := 0
	for _, c := range comboTable()[l.Index()] {
		if allowed(l, c, used, filter) {
			n++
		}
	}
	return n
}
