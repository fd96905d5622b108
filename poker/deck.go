package poker

// FullDeck is the set of all 52 cards.
const FullDeck Hand = (1 << 52) - 1

var deck = func() [52]Card {
	var cards [52]Card
	i := 0
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return cards
}()

// Deck returns the 52 cards in a fixed order: clubs, diamonds, hearts,
// spades, each from Two to Ace. The returned slice is a copy.
func Deck() []Card {
	out := make([]Card, len(deck))
	copy(out, deck[:])
	return out
}

// Remaining returns the cards of the deck not present in used, in deck order.
func Remaining(used Hand) []Card {
	out := make([]Card, 0, 52-used.CountCards())
	for _, c := range deck {
		if !used.HasCard(c) {
			out = append(out, c)
		}
	}
	return out
}
