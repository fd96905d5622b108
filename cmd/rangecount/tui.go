package main

import (
	"github.com/lox/rangecount/internal/tui"
)

type TUICmd struct {
	Range     string `arg:"" optional:"" help:"Initial range notation"`
	Preset    string `short:"p" help:"Start from a named preset"`
	CardFlags `embed:""`
}

func (c *TUICmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	var text string
	if c.Range != "" || c.Preset != "" {
		rf := RangeFlags{Range: c.Range, Preset: c.Preset}
		if text, err = rf.text(e.cfg); err != nil {
			return err
		}
	}
	sess, err := newSession(e, text, c.CardFlags)
	if err != nil {
		return err
	}
	return tui.Run(sess.Session, e.logger)
}
