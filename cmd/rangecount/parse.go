package main

import (
	"encoding/json"
	"fmt"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/internal/render"
	"github.com/lox/rangecount/internal/server"
)

type ParseCmd struct {
	Range string `arg:"" help:"Range notation to expand"`
	JSON  bool   `help:"Print the expansion as JSON"`
}

func (c *ParseCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	r, skipped := analysis.ParseRangeReport(c.Range)
	if c.JSON {
		data := server.ParsedData{Combos: r.Combos(), Skipped: skipped}
		for _, l := range r.Labels() {
			data.Labels = append(data.Labels, l.String())
		}
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	fmt.Fprintln(e.out, r.String())
	fmt.Fprintf(e.out, "%s %s\n", render.MutedStyle.Render("hands:"), render.CountStyle.Render(fmt.Sprint(r.Len())))
	fmt.Fprintf(e.out, "%s %s\n", render.MutedStyle.Render("combos:"), render.CountStyle.Render(fmt.Sprint(r.Combos())))
	if len(skipped) > 0 {
		fmt.Fprintf(e.out, "%s %v\n", render.WarningStyle.Render("skipped:"), skipped)
	}
	return nil
}
