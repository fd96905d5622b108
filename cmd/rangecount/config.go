package main

import (
	"fmt"

	"github.com/lox/rangecount/internal/config"
)

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a config file with the defaults"`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration"`
}

type ConfigInitCmd struct {
	Path  string `arg:"" optional:"" help:"Where to write the file (defaults to --config)" type:"path"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

func (c *ConfigInitCmd) Run(g *Globals) error {
	path := c.Path
	if path == "" {
		path = g.ConfigFile
	}
	if path == "" {
		path = config.DefaultFile
	}
	if err := config.DefaultConfig().WriteNew(path, c.Force); err != nil {
		return err
	}
	out := g.Stdout
	if out != nil {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	_, err = e.out.Write(e.cfg.Encode())
	return err
}
