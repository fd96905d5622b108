package main

import (
	"fmt"

	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/internal/render"
	"github.com/lox/rangecount/poker"
)

type ClassifyCmd struct {
	Hole  string `arg:"" help:"Two hole cards, e.g. AhKh"`
	Board string `arg:"" help:"Three to five board cards, e.g. Qh7h2c"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	hole, err := poker.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("need exactly 2 hole cards, got %d", len(hole))
	}
	if len(board) < 3 || len(board) > 5 {
		return fmt.Errorf("need 3 to 5 board cards, got %d", len(board))
	}
	all := poker.NewHand(append(hole, board...)...)
	if all.CountCards() != len(hole)+len(board) {
		return fmt.Errorf("duplicate card in %s %s", c.Hole, c.Board)
	}

	category := poker.BestCategory(hole, board)
	draws := classification.DetectDraws(all, len(board))
	texture := classification.DescribeBoard(poker.NewHand(board...))

	fmt.Fprintf(e.out, "%s %s %s\n", render.Cards(hole), render.MutedStyle.Render("on"), render.Cards(board))
	fmt.Fprintf(e.out, "%s %s\n", render.MutedStyle.Render("category:"), render.LabelStyle.Render(category.String()))
	fmt.Fprintf(e.out, "%s %s\n", render.MutedStyle.Render("draws:"), draws.String())
	fmt.Fprintf(e.out, "%s %s\n", render.MutedStyle.Render("board:"), texture.String())
	return nil
}
