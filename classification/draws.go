// Package classification detects drawing hands on a board.
//
// Draws are computed over the combined hole and board cards using the
// bit-packed poker.Hand representation. Each kind is an independent flag: a
// hand may hold several draws at once, and draws are reported even when a
// made hand already exists.
package classification

import (
	"math/bits"
	"strings"

	"github.com/lox/rangecount/poker"
)

// DrawKind represents the types of draws a hand can have
type DrawKind uint8

const (
	FlushDraw DrawKind = iota
	OpenEndedStraightDraw
	Gutshot
	BackdoorFlushDraw
)

// NumDrawKinds is the number of draw kinds.
const NumDrawKinds = 4

// DrawKinds lists every kind in display order.
var DrawKinds = [NumDrawKinds]DrawKind{FlushDraw, OpenEndedStraightDraw, Gutshot, BackdoorFlushDraw}

func (k DrawKind) String() string {
	switch k {
	case FlushDraw:
		return "flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case BackdoorFlushDraw:
		return "backdoor flush draw"
	default:
		return "unknown"
	}
}

// Short returns the abbreviation shown in tables (FD, OESD, Gutshot, BDFD).
func (k DrawKind) Short() string {
	switch k {
	case FlushDraw:
		return "FD"
	case OpenEndedStraightDraw:
		return "OESD"
	case Gutshot:
		return "Gutshot"
	case BackdoorFlushDraw:
		return "BDFD"
	default:
		return "?"
	}
}

// Key returns a stable snake_case identifier used in JSON output.
func (k DrawKind) Key() string {
	switch k {
	case FlushDraw:
		return "flush_draw"
	case OpenEndedStraightDraw:
		return "oesd"
	case Gutshot:
		return "gutshot"
	case BackdoorFlushDraw:
		return "backdoor_flush_draw"
	default:
		return "unknown"
	}
}

// DrawSet is a set of draw kinds.
type DrawSet uint8

// Has reports whether the set contains k.
func (s DrawSet) Has(k DrawKind) bool {
	return s&(1<<k) != 0
}

// With returns the set with k added.
func (s DrawSet) With(k DrawKind) DrawSet {
	return s | 1<<k
}

// Kinds returns the kinds in the set in display order.
func (s DrawSet) Kinds() []DrawKind {
	var kinds []DrawKind
	for _, k := range DrawKinds {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s DrawSet) String() string {
	kinds := s.Kinds()
	if len(kinds) == 0 {
		return "no draw"
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}

// DetectDraws analyses the combined hole and board cards. boardLen is the
// number of board cards among them; backdoor draws are only reported on the
// flop (boardLen == 3).
func DetectDraws(cards poker.Hand, boardLen int) DrawSet {
	var s DrawSet
	if HasFlushDraw(cards) {
		s = s.With(FlushDraw)
	}
	if HasOpenEndedStraightDraw(cards) {
		s = s.With(OpenEndedStraightDraw)
	}
	if HasGutshot(cards) {
		s = s.With(Gutshot)
	}
	if HasBackdoorFlushDraw(cards, boardLen) {
		s = s.With(BackdoorFlushDraw)
	}
	return s
}

// HasFlushDraw reports exactly four cards of one suit.
func HasFlushDraw(cards poker.Hand) bool {
	return maxSuitCount(cards) == 4
}

// HasBackdoorFlushDraw reports exactly three cards of one suit on a flop.
func HasBackdoorFlushDraw(cards poker.Hand, boardLen int) bool {
	if boardLen != 3 {
		return false
	}
	return maxSuitCount(cards) == 3
}

// HasOpenEndedStraightDraw reports four consecutive rank values, the Ace
// counting as both 1 and 14. A made straight contains such a run too.
func HasOpenEndedStraightDraw(cards poker.Hand) bool {
	p := straightPresence(cards)
	for start := 1; start <= 11; start++ {
		if (p>>start)&0xF == 0xF {
			return true
		}
	}
	return false
}

// HasGutshot reports a window of five consecutive rank values with exactly
// four of them present.
func HasGutshot(cards poker.Hand) bool {
	p := straightPresence(cards)
	for start := 1; start <= 10; start++ {
		if bits.OnesCount16((p>>start)&0x1F) == 4 {
			return true
		}
	}
	return false
}

// straightPresence maps the ranks present to a mask where bit v is set for
// rank value v (2-14), plus bit 1 when an Ace is present.
func straightPresence(cards poker.Hand) uint16 {
	p := cards.GetRankMask() << 2
	if p&(1<<14) != 0 {
		p |= 1 << 1
	}
	return p
}

func maxSuitCount(cards poker.Hand) int {
	best := 0
	for suit := range poker.Suit(poker.NumSuits) {
		if n := bits.OnesCount16(cards.GetSuitMask(suit)); n > best {
			best = n
		}
	}
	return best
}
