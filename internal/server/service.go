package server

import (
	"context"
	"fmt"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/internal/session"
	"github.com/lox/rangecount/poker"
)

// parseCardList parses wire card strings, reporting the first bad one.
func parseCardList(field string, strs []string) ([]poker.Card, *ErrorData) {
	cards := make([]poker.Card, 0, len(strs))
	for _, s := range strs {
		c, err := poker.ParseCard(s)
		if err != nil {
			return nil, &ErrorData{Code: ErrCodeInvalidCard, Message: fmt.Sprintf("%s: %v", field, err)}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// evaluate runs one aggregation in a fresh session so that hero and board
// cards pass through the same add rules as interactive edits.
func (s *Server) evaluate(ctx context.Context, data EvaluateData) (*ResultData, *ErrorData) {
	hero, errData := parseCardList("hero", data.Hero)
	if errData != nil {
		return nil, errData
	}
	board, errData := parseCardList("board", data.Board)
	if errData != nil {
		return nil, errData
	}

	suits := s.suits
	if data.Suits != nil {
		f, err := analysis.ParseSuitFilter(*data.Suits)
		if err != nil {
			return nil, &ErrorData{Code: ErrCodeInvalidSuits, Message: err.Error()}
		}
		suits = f
	}

	sess := session.New(s.logger, s.clock, session.WithWorkers(s.workers), session.WithSuits(suits))
	skipped := sess.ApplyText(data.Range)
	ignored := sess.SetCards(hero, board)

	res, err := sess.Evaluate(ctx)
	if err != nil {
		return nil, &ErrorData{Code: ErrCodeInternal, Message: err.Error()}
	}

	out := ResultDataFrom(res, sess.Board())
	out.Skipped = skipped
	if len(ignored) > 0 {
		out.Ignored = cardStrings(ignored)
	}
	return &out, nil
}

func (s *Server) parse(data ParseData) *ParsedData {
	r, skipped := analysis.ParseRangeReport(data.Range)
	labels := r.Labels()
	out := &ParsedData{
		Labels:  make([]string, len(labels)),
		Combos:  r.Combos(),
		Skipped: skipped,
	}
	for i, l := range labels {
		out.Labels[i] = l.String()
	}
	return out
}

// classify categorises a single two-card hand against a flop, turn or river.
func (s *Server) classify(data ClassifyData) (*ClassifiedData, *ErrorData) {
	hole, errData := parseCardList("hole", data.Hole)
	if errData != nil {
		return nil, errData
	}
	board, errData := parseCardList("board", data.Board)
	if errData != nil {
		return nil, errData
	}
	if len(hole) != 2 {
		return nil, &ErrorData{Code: ErrCodeInvalidHand, Message: fmt.Sprintf("need 2 hole cards, got %d", len(hole))}
	}
	if len(board) < 3 || len(board) > 5 {
		return nil, &ErrorData{Code: ErrCodeInvalidHand, Message: fmt.Sprintf("need 3 to 5 board cards, got %d", len(board))}
	}
	all := poker.NewHand(hole...) | poker.NewHand(board...)
	if all.CountCards() != len(hole)+len(board) {
		return nil, &ErrorData{Code: ErrCodeInvalidHand, Message: "duplicate cards"}
	}

	draws := classification.DetectDraws(all, len(board))
	out := &ClassifiedData{
		Category: poker.BestCategory(hole, board).Key(),
		Draws:    []string{},
		Texture:  TextureDataFrom(classification.DescribeBoard(poker.NewHand(board...))),
	}
	for _, k := range draws.Kinds() {
		out.Draws = append(out.Draws, k.Key())
	}
	return out, nil
}
