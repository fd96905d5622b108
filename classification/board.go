package classification

import (
	"fmt"
	"math/bits"

	"github.com/lox/rangecount/poker"
)

// BoardTexture grades how coordinated a board is, from dry to very wet.
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// SuitPattern describes the suit distribution of a board.
type SuitPattern int

const (
	Rainbow SuitPattern = iota
	TwoTone
	Monotone
	FlushBoard
)

func (p SuitPattern) String() string {
	switch p {
	case Rainbow:
		return "rainbow"
	case TwoTone:
		return "two-tone"
	case Monotone:
		return "monotone"
	case FlushBoard:
		return "four-flush"
	default:
		return "unknown"
	}
}

// BoardSummary is a short description of a flop, turn or river.
type BoardSummary struct {
	Texture BoardTexture
	Suits   SuitPattern
	// MaxSuit is the largest number of board cards sharing a suit.
	MaxSuit int
	// Connected is the longest run of consecutive ranks, the Ace playing low
	// as well as high.
	Connected int
	Paired    bool
	Broadway  int
}

func (s BoardSummary) String() string {
	paired := ""
	if s.Paired {
		paired = ", paired"
	}
	return fmt.Sprintf("%s, %s%s", s.Texture, s.Suits, paired)
}

// DescribeBoard summarises the board. Boards with fewer than three cards are
// always reported as dry.
func DescribeBoard(board poker.Hand) BoardSummary {
	n := board.CountCards()
	s := BoardSummary{
		MaxSuit:   maxSuitCount(board),
		Connected: longestRun(straightPresence(board)),
		Paired:    bits.OnesCount16(board.GetRankMask()) < n,
		Broadway:  bits.OnesCount16(board.GetRankMask() >> poker.Ten),
	}
	switch {
	case s.MaxSuit >= 4:
		s.Suits = FlushBoard
	case s.MaxSuit == 3 && n == 3:
		s.Suits = Monotone
	case s.MaxSuit >= 2:
		s.Suits = TwoTone
	}
	if n >= 3 {
		s.Texture = grade(s)
	}
	return s
}

func grade(s BoardSummary) BoardTexture {
	var wetness int
	switch {
	case s.Suits == Monotone || s.MaxSuit >= 4:
		wetness += 4
	case s.MaxSuit == 3:
		wetness += 3
	case s.MaxSuit == 2:
		wetness++
	}

	switch {
	case s.Connected >= 4:
		wetness += 4
	case s.Connected == 3:
		wetness += 3
	case s.Connected == 2:
		wetness++
	}

	if s.Paired {
		wetness++
	}
	if s.Broadway >= 3 {
		wetness++
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// longestRun returns the longest run of consecutive set bits.
func longestRun(mask uint16) int {
	best := 0
	for mask != 0 {
		run := bits.TrailingZeros16(^(mask >> bits.TrailingZeros16(mask)))
		best = max(best, run)
		mask &= mask + (1 << bits.TrailingZeros16(mask))
	}
	return best
}
