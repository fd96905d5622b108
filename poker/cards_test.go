package poker

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "ten with T notation", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "lowercase rank", input: "kd", wantCard: NewCard(King, Diamonds)},
		{name: "uppercase suit", input: "QH", wantCard: NewCard(Queen, Hearts)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "ten as 10", input: "10", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AhKh, qd 2C")
	require.NoError(t, err)
	assert.Equal(t, "Ah Kh Qd 2c", FormatCards(cards))

	_, err = ParseCards("AhK")
	require.Error(t, err)

	_, err = ParseCards("AhZz")
	require.Error(t, err)

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			card := NewCard(rank, suit)
			str := card.String()
			if seen[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			seen[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
		}
	}

	if len(seen) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(seen))
	}
}

func TestHandOperations(t *testing.T) {
	t.Parallel()
	aceSpades, _ := ParseCard("As")
	kingHearts, _ := ParseCard("Kh")
	queenDiamonds, _ := ParseCard("Qd")

	hand := NewHand(aceSpades, kingHearts)
	assert.True(t, hand.HasCard(aceSpades))
	assert.True(t, hand.HasCard(kingHearts))
	assert.False(t, hand.HasCard(queenDiamonds))
	assert.Equal(t, 2, hand.CountCards())

	hand.AddCard(queenDiamonds)
	assert.True(t, hand.HasCard(queenDiamonds))
	assert.Equal(t, 3, hand.CountCards())

	hand.RemoveCard(aceSpades)
	assert.False(t, hand.HasCard(aceSpades))
	assert.Equal(t, "Qd Kh", hand.String())
}

func TestHandBitset(t *testing.T) {
	t.Parallel()
	aceSpades, _ := ParseCard("As")
	aceHearts, _ := ParseCard("Ah")
	twoClubs, _ := ParseCard("2c")

	if bits.OnesCount64(uint64(aceSpades)) != 1 {
		t.Error("Card should be a single bit")
	}
	if aceSpades&aceHearts != 0 || aceSpades&twoClubs != 0 || aceHearts&twoClubs != 0 {
		t.Error("Different cards should not share bits")
	}

	combined := Hand(aceSpades) | Hand(aceHearts) | Hand(twoClubs)
	assert.Equal(t, 3, combined.CountCards())
	assert.True(t, combined.Overlaps(NewHand(twoClubs)))
	assert.False(t, combined.Overlaps(NewHand(NewCard(Two, Spades))))
}

func TestGetSuitMask(t *testing.T) {
	t.Parallel()
	var cards []Card
	for rank := range Rank(NumRanks) {
		cards = append(cards, NewCard(rank, Spades))
	}
	hand := NewHand(cards...)

	if mask := hand.GetSuitMask(Spades); mask != 0x1FFF {
		t.Errorf("Expected all spades, got mask %016b", mask)
	}
	if hand.GetSuitMask(Hearts) != 0 {
		t.Error("Hearts should be empty")
	}
	assert.Equal(t, uint16(0x1FFF), hand.GetRankMask())
}

func TestSuitDisplay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "♥", Hearts.Glyph())
	assert.Equal(t, "♣", Clubs.Glyph())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.Equal(t, Hearts.Color(), Diamonds.Color())
	assert.NotEqual(t, Hearts.Color(), Clubs.Color())
}

func TestDeck(t *testing.T) {
	t.Parallel()
	cards := Deck()
	require.Len(t, cards, 52)
	assert.Equal(t, FullDeck, NewHand(cards...))
	assert.Equal(t, "2c", cards[0].String())
	assert.Equal(t, "As", cards[51].String())

	used := NewHand(MustParseCards("AsKh2c")...)
	remaining := Remaining(used)
	require.Len(t, remaining, 49)
	assert.False(t, NewHand(remaining...).Overlaps(used))
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
