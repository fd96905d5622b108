package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/rangecount/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Count    CountCmd         `cmd:"" help:"Count combos, made hands and draws for a range"`
	Parse    ParseCmd         `cmd:"" help:"Expand range notation into hands"`
	Grid     GridCmd          `cmd:"" help:"Show a range on the 13x13 grid"`
	Classify ClassifyCmd      `cmd:"" help:"Classify one hand against a board"`
	Presets  PresetsCmd       `cmd:"" help:"List preset ranges"`
	Config   ConfigCmd        `cmd:"" help:"Write or show the configuration file"`
	Serve    ServeCmd         `cmd:"" help:"Run the HTTP and WebSocket service"`
	TUI      TUICmd           `cmd:"tui" help:"Interactive range editor"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout}}
	ctx := kong.Parse(&cli,
		kong.Name("rangecount"),
		kong.Description("Exact combo, made-hand and draw counts for poker ranges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
