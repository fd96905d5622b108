package session

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/poker"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return New(logger, quartz.NewMock(t), opts...)
}

func card(s string) poker.Card {
	c, err := poker.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestAddHeroRules(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	assert.True(t, s.AddHero(card("Ah")))
	assert.False(t, s.AddHero(card("Ah")), "duplicate")
	assert.True(t, s.AddHero(card("Kd")))
	assert.False(t, s.AddHero(card("Qs")), "hero full")
	assert.Equal(t, "Ah Kd", poker.FormatCards(s.Hero()))

	assert.False(t, s.AddBoard(card("Kd")), "card held by hero")
	assert.False(t, s.AddHero(poker.Card(0)), "invalid card")
}

func TestAddBoardRules(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	for _, c := range poker.MustParseCards("2c3c4c5c6c") {
		require.True(t, s.AddBoard(c))
	}
	assert.False(t, s.AddBoard(card("7c")), "board full")
	assert.False(t, s.AddHero(card("2c")), "card on board")
	assert.Len(t, s.Board(), MaxBoard)

	s.RemoveBoard(0)
	s.RemoveBoard(10)
	s.RemoveBoard(-1)
	assert.Equal(t, "3c 4c 5c 6c", poker.FormatCards(s.Board()))
	assert.True(t, s.AddBoard(card("2c")))
}

func TestRemoveHero(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	s.AddHero(card("Ah"))
	s.AddHero(card("Kd"))
	s.RemoveHero(0)
	assert.Equal(t, "Kd", poker.FormatCards(s.Hero()))
	assert.True(t, s.AddHero(card("Ah")))
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	s.AddBoard(card("Ah"))
	board := s.Board()
	board[0] = card("2c")
	assert.Equal(t, "Ah", poker.FormatCards(s.Board()))
}

func TestSetCards(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	s.AddHero(card("2c"))

	rejected := s.SetCards(
		poker.MustParseCards("AhKdQs"),
		poker.MustParseCards("AhTc9c8c7c6c5c"),
	)
	assert.Equal(t, "Qs Ah 5c", poker.FormatCards(rejected))
	assert.Equal(t, "Ah Kd", poker.FormatCards(s.Hero()))
	assert.Equal(t, "Tc 9c 8c 7c 6c", poker.FormatCards(s.Board()))
}

func TestRangeEditing(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)

	skipped := s.ApplyText("QQ+, AKs, junk")
	assert.Equal(t, []string{"JUNK"}, skipped)
	assert.Equal(t, 4, s.Range.Len())

	aks := analysis.MustLabel("AKs")
	assert.False(t, s.ToggleLabel(aks))
	assert.True(t, s.ToggleLabel(aks))

	s.ClearRange()
	assert.True(t, s.Range.IsEmpty())
}

func TestSuitFilterEditing(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, WithSuits(analysis.SuitsOf(poker.Hearts)))
	assert.Equal(t, "h", s.Suits.String())
	s.ToggleSuit(poker.Spades)
	s.ToggleSuit(poker.Hearts)
	assert.Equal(t, "s", s.Suits.String())
	s.ResetSuits()
	assert.Equal(t, analysis.AllSuits, s.Suits)
}

func TestInputSnapshot(t *testing.T) {
	t.Parallel()
	s := newTestSession(t)
	s.ApplyText("AKs")
	s.AddHero(card("Ah"))
	s.AddBoard(card("Kc"))

	in := s.Input()
	s.ClearRange()
	s.ClearCards()

	assert.Equal(t, 1, in.Range.Len())
	assert.True(t, in.Used.HasCard(card("Ah")))
	assert.True(t, in.Used.HasCard(card("Kc")))
	assert.Len(t, in.Board, 1)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		workers []Option
	}{
		{"sequential", nil},
		{"parallel", []Option{WithWorkers(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestSession(t, tt.workers...)
			s.ApplyText("AKs")
			for _, c := range poker.MustParseCards("QhJhTh") {
				require.True(t, s.AddBoard(c))
			}

			res, err := s.Evaluate(ctx)
			require.NoError(t, err)
			assert.Equal(t, 4, res.Total)
			assert.Equal(t, 1, res.Categories[poker.StraightFlush])
			assert.Equal(t, classification.VeryWet, s.Texture().Texture)

			s.ToggleSuit(poker.Hearts)
			res, err = s.Evaluate(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, res.Total)
			assert.Zero(t, res.Categories[poker.StraightFlush])
		})
	}
}

func TestEvaluateLogsTiming(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(logger, quartz.NewMock(t))
	s.ApplyText("AA")

	_, err := s.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Evaluated range")
	assert.Contains(t, buf.String(), "combos=6")
	assert.Contains(t, buf.String(), "elapsed=0s")
}

func TestEvaluateCancelled(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, WithWorkers(1))
	s.ApplyText("22+")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Evaluate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
