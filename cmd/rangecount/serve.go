package main

import (
	"time"

	"github.com/lox/rangecount/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Listen address (overrides the config, e.g. :8080)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = e.cfg.ServerAddress()
	}

	srv := server.NewServer(addr, e.logger,
		server.WithWorkers(e.cfg.Workers),
		server.WithSuits(e.cfg.SuitFilter()),
		server.WithReadTimeout(time.Duration(e.cfg.Server.ReadTimeout)*time.Second),
	)

	ctx, cancel := signalContext(e.logger)
	defer cancel()

	e.logger.Debug("Loaded configuration", "file", g.ConfigFile, "version", version)
	return srv.Start(ctx)
}
