package poker

import (
	"math/bits"
)

// Category is a made-hand category, ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// NumCategories is the number of distinct categories.
const NumCategories = 9

// Categories lists every category from weakest to strongest.
var Categories = [NumCategories]Category{
	HighCard, Pair, TwoPair, Trips, Straight, Flush, FullHouse, Quads, StraightFlush,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case Trips:
		return "Trips"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Quads"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Key returns a stable snake_case identifier used in JSON output.
func (c Category) Key() string {
	switch c {
	case HighCard:
		return "high_card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two_pair"
	case Trips:
		return "trips"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full_house"
	case Quads:
		return "quads"
	case StraightFlush:
		return "straight_flush"
	default:
		return "unknown"
	}
}

// BestCategory returns the strongest category over every 5-card subset of
// hole plus board. Fewer than five cards in total yields HighCard. Kickers
// are not compared: only the category matters.
func BestCategory(hole, board []Card) Category {
	cards := make([]Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	n := len(cards)
	if n < 5 {
		return HighCard
	}

	best := HighCard
	var five [5]Card
	var choose func(start, depth int) bool
	choose = func(start, depth int) bool {
		if depth == 5 {
			if c := Categorize5(five); c > best {
				best = c
			}
			return best == StraightFlush
		}
		for i := start; i <= n-(5-depth); i++ {
			five[depth] = cards[i]
			if choose(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	choose(0, 0)
	return best
}

// Categorize5 classifies exactly five distinct cards.
func Categorize5(cards [5]Card) Category {
	hand := NewHand(cards[:]...)

	var suitMasks [4]uint16
	var rankMask uint16
	flush := false
	for suit := range Suit(NumSuits) {
		mask := hand.GetSuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
		if bits.OnesCount16(mask) >= 5 {
			flush = true
		}
	}
	straight := straightHighMask(rankMask) > 0

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	switch {
	case flush && straight:
		return StraightFlush
	case quadsMask != 0:
		return Quads
	case tripsMask != 0 && pairsMask != 0:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case tripsMask != 0:
		return Trips
	case bits.OnesCount16(pairsMask) >= 2:
		return TwoPair
	case pairsMask != 0:
		return Pair
	default:
		return HighCard
	}
}

// straightHighMask returns the high-card rank of the best straight present in the mask (0 if none).
// The mask uses rank bits 0-12 for deuce through ace; the ace also plays low.
func straightHighMask(mask uint16) Rank {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= 0x1FFF

	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := Rank(bits.Len16(seq) - 1)
		return low + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}
