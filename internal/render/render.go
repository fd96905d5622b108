package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/poker"
)

// Card renders a card as rank and suit glyph in the suit's colour, e.g. "A♥".
func Card(c poker.Card) string {
	return CardStyle(c.Suit()).Render(c.Rank().String() + c.Suit().Glyph())
}

// Cards renders cards separated by spaces, or a dash when there are none.
func Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return MutedStyle.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Percent formats a share with one decimal place.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Summary writes the input overview and, on a flop or later, the category and
// draw tables.
func Summary(w io.Writer, in analysis.Input, hero []poker.Card, res analysis.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	board := Cards(in.Board)
	if len(in.Board) >= 3 {
		texture := classification.DescribeBoard(poker.NewHand(in.Board...))
		board += " " + MutedStyle.Render("("+texture.String()+")")
	}
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("range"),
		fmt.Sprintf("%d hands, %d combos unblocked", in.Range.Len(), in.Range.Combos()))
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("hero"), Cards(hero))
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("board"), board)
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("suits"), in.Suits.String())
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("combos"), CountStyle.Render(fmt.Sprint(res.Total)))
	if err := tw.Flush(); err != nil {
		return err
	}

	if !res.Postflop {
		_, err := fmt.Fprintf(w, "\n%s\n", MutedStyle.Render("add three board cards for categories and draws"))
		return err
	}

	fmt.Fprintln(w)
	if err := Categories(w, res); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return Draws(w, res)
}

// Categories writes one row per made-hand category, strongest first.
func Categories(w io.Writer, res analysis.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		HeaderStyle.Render("category"),
		HeaderStyle.Render("combos"),
		HeaderStyle.Render("share"))
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		c := poker.Categories[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			LabelStyle.Render(c.String()),
			CountStyle.Render(fmt.Sprint(res.Categories[c])),
			PercentStyle.Render(Percent(res.CategoryPercent(c))))
	}
	return tw.Flush()
}

// Draws writes one row per draw kind. Shares are of all surviving combos.
func Draws(w io.Writer, res analysis.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		HeaderStyle.Render("draw"),
		HeaderStyle.Render("combos"),
		HeaderStyle.Render("share"))
	for _, k := range classification.DrawKinds {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			LabelStyle.Render(k.Short()),
			CountStyle.Render(fmt.Sprint(res.Draws[k])),
			PercentStyle.Render(Percent(res.DrawPercent(k))))
	}
	return tw.Flush()
}

// Labels writes the remaining combos of every label in the result, in grid order.
func Labels(w io.Writer, res analysis.Result) error {
	labels := make([]analysis.Label, 0, len(res.PerLabel))
	for _, l := range analysis.AllLabels() {
		if _, ok := res.PerLabel[l]; ok {
			labels = append(labels, l)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("hand"), HeaderStyle.Render("combos"))
	for _, l := range labels {
		fmt.Fprintf(tw, "%s\t%s\n", LabelStyle.Render(l.String()), CountStyle.Render(fmt.Sprint(res.PerLabel[l])))
	}
	return tw.Flush()
}
