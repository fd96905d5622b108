// Package session holds the mutable editing state behind the CLI, TUI and
// service: the range, hero cards, board and suit filter. Each Evaluate call
// snapshots the state into an analysis.Input and recomputes from scratch.
package session

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/poker"
)

const (
	MaxHero  = 2
	MaxBoard = 5
)

// Session is not safe for concurrent use; each caller owns its own.
type Session struct {
	Range analysis.Range
	Suits analysis.SuitFilter

	hero  []poker.Card
	board []poker.Card

	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Session.
type Option func(*Session)

// WithWorkers evaluates with AggregateParallel using n workers (0 means
// GOMAXPROCS). Without it, Evaluate runs sequentially.
func WithWorkers(n int) Option {
	return func(s *Session) { s.workers = n }
}

// WithSuits sets the initial suit filter.
func WithSuits(f analysis.SuitFilter) Option {
	return func(s *Session) { s.Suits = f }
}

// New creates an empty session with all suits enabled.
func New(logger *log.Logger, clock quartz.Clock, opts ...Option) *Session {
	s := &Session{
		Suits:   analysis.AllSuits,
		workers: -1,
		logger:  logger.WithPrefix("session"),
		clock:   clock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hero returns a copy of the hero cards.
func (s *Session) Hero() []poker.Card { return slices.Clone(s.hero) }

// Board returns a copy of the board cards.
func (s *Session) Board() []poker.Card { return slices.Clone(s.board) }

// Used returns every hero and board card.
func (s *Session) Used() poker.Hand {
	return poker.NewHand(s.hero...) | poker.NewHand(s.board...)
}

// AddHero adds a hero card. It returns false, changing nothing, if the card
// is already in use or the hero already holds two cards.
func (s *Session) AddHero(c poker.Card) bool {
	if len(s.hero) >= MaxHero || !s.free(c) {
		return false
	}
	s.hero = append(s.hero, c)
	return true
}

// AddBoard adds a board card under the same rules as AddHero, with room for five.
func (s *Session) AddBoard(c poker.Card) bool {
	if len(s.board) >= MaxBoard || !s.free(c) {
		return false
	}
	s.board = append(s.board, c)
	return true
}

func (s *Session) free(c poker.Card) bool {
	return c.Valid() && !s.Used().HasCard(c)
}

// RemoveHero removes the i'th hero card. Out of range indexes are ignored.
func (s *Session) RemoveHero(i int) {
	if i >= 0 && i < len(s.hero) {
		s.hero = slices.Delete(s.hero, i, i+1)
	}
}

// RemoveBoard removes the i'th board card. Out of range indexes are ignored.
func (s *Session) RemoveBoard(i int) {
	if i >= 0 && i < len(s.board) {
		s.board = slices.Delete(s.board, i, i+1)
	}
}

// ClearCards removes every hero and board card.
func (s *Session) ClearCards() {
	s.hero = nil
	s.board = nil
}

// SetCards replaces hero and board, applying the add rules card by card.
// Rejected cards are returned in input order.
func (s *Session) SetCards(hero, board []poker.Card) (rejected []poker.Card) {
	s.ClearCards()
	for _, c := range hero {
		if !s.AddHero(c) {
			rejected = append(rejected, c)
		}
	}
	for _, c := range board {
		if !s.AddBoard(c) {
			rejected = append(rejected, c)
		}
	}
	return rejected
}

// ToggleLabel flips one grid cell and reports whether it is now selected.
func (s *Session) ToggleLabel(l analysis.Label) bool {
	return s.Range.Toggle(l)
}

// ApplyText replaces the range with parsed notation and returns the tokens
// that matched nothing.
func (s *Session) ApplyText(text string) []string {
	r, skipped := analysis.ParseRangeReport(text)
	s.Range = r
	if len(skipped) > 0 {
		s.logger.Debug("Skipped range tokens", "tokens", skipped)
	}
	return skipped
}

// ClearRange empties the range.
func (s *Session) ClearRange() {
	s.Range.Clear()
}

// ToggleSuit flips one suit of the suited-hand filter.
func (s *Session) ToggleSuit(suit poker.Suit) {
	s.Suits = s.Suits.Toggle(suit)
}

// ResetSuits enables all four suits.
func (s *Session) ResetSuits() {
	s.Suits = analysis.AllSuits
}

// Input snapshots the session.
func (s *Session) Input() analysis.Input {
	return analysis.Input{
		Range: s.Range,
		Used:  s.Used(),
		Board: s.Board(),
		Suits: s.Suits,
	}
}

// Texture describes the current board.
func (s *Session) Texture() classification.BoardSummary {
	return classification.DescribeBoard(poker.NewHand(s.board...))
}

// Evaluate recomputes the result for the current state.
func (s *Session) Evaluate(ctx context.Context) (analysis.Result, error) {
	in := s.Input()
	start := s.clock.Now()

	var res analysis.Result
	if s.workers < 0 {
		res = analysis.Aggregate(in)
	} else {
		var err error
		res, err = analysis.AggregateParallel(ctx, in, s.workers)
		if err != nil {
			return analysis.Result{}, err
		}
	}

	s.logger.Debug("Evaluated range",
		"labels", in.Range.Len(),
		"combos", res.Total,
		"board", poker.FormatCards(in.Board),
		"elapsed", s.clock.Since(start).Round(time.Microsecond))
	return res, nil
}
