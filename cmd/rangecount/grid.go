package main

import (
	"context"
	"fmt"

	"github.com/lox/rangecount/internal/render"
)

type GridCmd struct {
	RangeFlags `embed:""`
	CardFlags  `embed:""`
}

func (c *GridCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	text, err := c.text(e.cfg)
	if err != nil {
		return err
	}
	sess, err := newSession(e, text, c.CardFlags)
	if err != nil {
		return err
	}
	res, err := sess.Evaluate(context.Background())
	if err != nil {
		return err
	}

	grid := render.Grid{Range: sess.Range, Remaining: res.PerLabel, Cursor: -1}
	fmt.Fprintln(e.out, grid.Render())
	fmt.Fprintf(e.out, "\n%s %s\n", render.MutedStyle.Render("combos:"), render.CountStyle.Render(fmt.Sprint(res.Total)))
	return nil
}
