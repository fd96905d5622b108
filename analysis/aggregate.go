package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/poker"
)

// Input is everything an aggregation depends on. It is a plain value: the
// aggregator keeps no state between calls.
type Input struct {
	Range Range
	// Used holds the blocked cards (hero and board). Board cards are
	// always treated as blocked whether or not they appear here.
	Used  poker.Hand
	Board []poker.Card
	Suits SuitFilter
}

// blockers returns the full set of cards no combo may touch.
func (in Input) blockers() poker.Hand {
	return in.Used | poker.NewHand(in.Board...)
}

// Postflop reports whether the board is large enough for categories and draws.
func (in Input) Postflop() bool {
	return len(in.Board) >= 3
}

// Result holds exact combo counts for a range. Category and draw counts are
// only populated once three or more board cards are known.
type Result struct {
	Total      int
	Categories [poker.NumCategories]int
	Draws      [classification.NumDrawKinds]int
	// PerLabel has an entry for every label in the range, including
	// labels with nothing left.
	PerLabel map[Label]int
	Postflop bool
}

// CategoryTotal returns the sum of all category counts.
func (r Result) CategoryTotal() int {
	n := 0
	for _, c := range r.Categories {
		n += c
	}
	return n
}

// CategoryPercent returns a category's share of all categorised combos.
func (r Result) CategoryPercent(c poker.Category) float64 {
	return percent(r.Categories[c], r.CategoryTotal())
}

// DrawPercent returns the share of surviving combos holding draw k.
func (r Result) DrawPercent(k classification.DrawKind) float64 {
	return percent(r.Draws[k], r.Total)
}

func percent(n, denom int) float64 {
	if denom == 0 {
		denom = 1
	}
	return float64(n) / float64(denom) * 100
}

// labelTally is the contribution of a single label.
type labelTally struct {
	label      Label
	total      int
	categories [poker.NumCategories]int
	draws      [classification.NumDrawKinds]int
}

func tallyLabel(l Label, blocked, boardHand poker.Hand, board []poker.Card, suits SuitFilter) labelTally {
	t := labelTally{label: l}
	postflop := len(board) >= 3
	for _, c := range comboTable()[l.Index()] {
		if !allowed(l, c, blocked, suits) {
			continue
		}
		t.total++
		if !postflop {
			continue
		}
		t.categories[poker.BestCategory([]poker.Card{c.Hi, c.Lo}, board)]++
		draws := classification.DetectDraws(c.Hand()|boardHand, len(board))
		for _, k := range classification.DrawKinds {
			if draws.Has(k) {
				t.draws[k]++
			}
		}
	}
	return t
}

func (r *Result) add(t labelTally) {
	r.Total += t.total
	r.PerLabel[t.label] = t.total
	for i, n := range t.categories {
		r.Categories[i] += n
	}
	for i, n := range t.draws {
		r.Draws[i] += n
	}
}

// Aggregate counts every surviving combo in the range and, on a flop or
// later, classifies each against the board.
func Aggregate(in Input) Result {
	labels := in.Range.Labels()
	res := Result{PerLabel: make(map[Label]int, len(labels)), Postflop: in.Postflop()}
	blocked := in.blockers()
	boardHand := poker.NewHand(in.Board...)
	for _, l := range labels {
		res.add(tallyLabel(l, blocked, boardHand, in.Board, in.Suits))
	}
	return res
}

// AggregateParallel computes the same result as Aggregate with labels fanned
// out across at most workers goroutines (GOMAXPROCS when workers <= 0).
// It returns early with the context's error if ctx is cancelled.
func AggregateParallel(ctx context.Context, in Input, workers int) (Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	labels := in.Range.Labels()
	blocked := in.blockers()
	boardHand := poker.NewHand(in.Board...)
	tallies := make([]labelTally, len(labels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, l := range labels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tallies[i] = tallyLabel(l, blocked, boardHand, in.Board, in.Suits)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{PerLabel: make(map[Label]int, len(labels)), Postflop: in.Postflop()}
	for _, t := range tallies {
		res.add(t)
	}
	return res, nil
}
