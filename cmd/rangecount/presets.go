package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/internal/render"
)

type PresetsCmd struct {
	Scenario string `short:"s" help:"Only list presets for this scenario (open, bb_call, sb_3bet, ...)"`
	Ranges   bool   `short:"r" help:"Print each preset's range notation"`
}

func (c *PresetsCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		render.HeaderStyle.Render("name"),
		render.HeaderStyle.Render("scenario"),
		render.HeaderStyle.Render("hands"),
		render.HeaderStyle.Render("combos"),
		render.HeaderStyle.Render("description"))
	for _, p := range e.cfg.Presets {
		if c.Scenario != "" && p.Scenario != c.Scenario {
			continue
		}
		r := analysis.ParseRange(p.Range)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			render.LabelStyle.Render(p.Name), p.Scenario, r.Len(), r.Combos(), p.Description)
		if c.Ranges {
			fmt.Fprintf(tw, "\t%s\t\t\t\n", render.MutedStyle.Render(p.Range))
		}
	}
	return tw.Flush()
}
