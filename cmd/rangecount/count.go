package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lox/rangecount/internal/render"
	"github.com/lox/rangecount/internal/server"
)

type CountCmd struct {
	RangeFlags `embed:""`
	CardFlags  `embed:""`

	Labels bool `short:"l" help:"Also list remaining combos per hand"`
	JSON   bool `help:"Print the result as JSON"`
}

func (c *CountCmd) Run(g *Globals) error {
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

	if c.JSON {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		data := server.ResultDataFrom(res, sess.Board())
		data.Skipped = sess.skipped
		for _, c := range sess.ignored {
			data.Ignored = append(data.Ignored, c.String())
		}
		return enc.Encode(data)
	}

	if err := render.Summary(e.out, sess.Input(), sess.Hero(), res); err != nil {
		return err
	}
	if c.Labels {
		fmt.Fprintln(e.out)
		return render.Labels(e.out, res)
	}
	return nil
}
