// Package poker defines the card model shared by the range tools: ranks,
// suits, bit-packed cards and card sets, plus made-hand categorisation.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Rank is a card rank, ordered Two (0) through Ace (12).
type Rank uint8

// Suit is one of the four suits. Suits carry no ordering.
type Suit uint8

// Rank constants (0-12 for 2-A)
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumRanks and NumSuits size the deck.
const (
	NumRanks = 13
	NumSuits = 4
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// Char returns the single-character notation for the rank ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) Char() byte {
	if r > Ace {
		return '?'
	}
	return rankChars[r]
}

func (r Rank) String() string {
	return string(r.Char())
}

// Value returns the conventional numeric value (2-14, Ace high).
func (r Rank) Value() int {
	return int(r) + 2
}

// ParseRank converts a rank character, case-insensitively.
func ParseRank(c byte) (Rank, bool) {
	switch c {
	case 't':
		c = 'T'
	case 'j':
		c = 'J'
	case 'q':
		c = 'Q'
	case 'k':
		c = 'K'
	case 'a':
		c = 'A'
	}
	idx := strings.IndexByte(rankChars, c)
	if idx < 0 {
		return 0, false
	}
	return Rank(idx), true
}

// Char returns the lowercase suit letter.
func (s Suit) Char() byte {
	if s > Spades {
		return '?'
	}
	return suitChars[s]
}

func (s Suit) String() string {
	return string(s.Char())
}

// Glyph returns the unicode suit symbol.
func (s Suit) Glyph() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Color returns the display colour for the suit.
func (s Suit) Color() string {
	if s == Diamonds || s == Hearts {
		return "#DC2626"
	}
	return "#111827"
}

// IsRed reports whether the suit is displayed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// ParseSuit converts a suit letter, case-insensitively.
func ParseSuit(c byte) (Suit, bool) {
	switch c {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	}
	return 0, false
}

// Card represents a single card as one bit in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs]
type Card uint64

// Hand is a set of cards sharing the Card bit layout.
type Hand uint64

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	offset := uint8(suit)*NumRanks + uint8(rank)
	return Card(1) << offset
}

// bitPosition returns which bit position this card occupies (0-51), or 255 for the zero card.
func (c Card) bitPosition() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return Rank(c.bitPosition() % NumRanks)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(c.bitPosition() / NumRanks)
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && bits.OnesCount64(uint64(c)) == 1 && c.bitPosition() < 52
}

// String returns the canonical notation, e.g. "As", "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{c.Rank().Char(), c.Suit().Char()})
}

// ParseCard parses a two-character card like "As" or "td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}
	rank, ok := ParseRank(s[0])
	if !ok {
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}
	suit, ok := ParseSuit(s[1])
	if !ok {
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses concatenated card notation such as "AhKh", "Ah Kh" or
// "Ah,Kh,Qd". Duplicates are preserved; callers decide whether they are allowed.
func ParseCards(s string) ([]Card, error) {
	s = strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %d (must be even)", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NewHand creates a hand from multiple cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// RemoveCard removes a card from the hand.
func (h *Hand) RemoveCard(c Card) {
	*h &^= Hand(c)
}

// HasCard checks if the hand contains a specific card.
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// Overlaps reports whether the two sets share any card.
func (h Hand) Overlaps(other Hand) bool {
	return h&other != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the ranks held in one suit as a 13-bit mask.
func (h Hand) GetSuitMask(suit Suit) uint16 {
	offset := uint8(suit) * NumRanks
	return uint16((h >> offset) & 0x1FFF)
}

// GetRankMask returns a 13-bit mask of the ranks present in any suit.
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := range Suit(NumSuits) {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// Cards returns the cards in the set, clubs first, ascending rank within a suit.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

func (h Hand) String() string {
	return FormatCards(h.Cards())
}
