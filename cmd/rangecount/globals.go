package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/internal/config"
	"github.com/lox/rangecount/internal/render"
	"github.com/lox/rangecount/internal/session"
	"github.com/lox/rangecount/poker"
)

// Globals are flags shared by every command.
type Globals struct {
	ConfigFile string `name:"config" short:"c" default:"${config_file}" help:"Path to HCL config file" type:"path"`
	LogLevel   string `help:"Override the configured log level (debug, info, warn, error)"`
	NoColor    bool   `help:"Disable colored output"`

	Stdout io.Writer `kong:"-"`
}

// env is the configuration and logger a command runs with.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func (g *Globals) load() (*env, error) {
	if g.NoColor {
		render.DisableColor()
	}

	path := g.ConfigFile
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: cfg.Level() == log.DebugLevel,
	})

	out := g.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &env{cfg: cfg, logger: logger, out: out}, nil
}

// RangeFlags select the range a command works on.
type RangeFlags struct {
	Range  string `arg:"" optional:"" help:"Range notation, e.g. '22+, A2s+, KTo+'"`
	Preset string `short:"p" help:"Use a named preset instead of a range argument"`
}

// text returns the notation to parse, resolving presets from the config.
func (f RangeFlags) text(cfg *config.Config) (string, error) {
	switch {
	case f.Range != "" && f.Preset != "":
		return "", fmt.Errorf("give a range or --preset, not both")
	case f.Preset != "":
		p, ok := cfg.Preset(f.Preset)
		if !ok {
			return "", fmt.Errorf("unknown preset %q (see 'rangecount presets')", f.Preset)
		}
		return p.Range, nil
	case f.Range != "":
		return f.Range, nil
	default:
		return "", fmt.Errorf("a range or --preset is required")
	}
}

// CardFlags set hero, board and suit filter.
type CardFlags struct {
	Hero  string `help:"Hero cards, e.g. AhKd"`
	Board string `short:"b" help:"Board cards, e.g. Qh7h2c"`
	Suits string `help:"Suits counted for suited hands, e.g. 'hs' (defaults to the config)"`
}

// loaded is a session plus whatever input it had to drop.
type loaded struct {
	*session.Session
	skipped []string
	ignored []poker.Card
}

// newSession builds a session from range notation and the card flags,
// warning about anything it had to drop.
func newSession(e *env, text string, cf CardFlags) (*loaded, error) {
	hero, err := poker.ParseCards(cf.Hero)
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	board, err := poker.ParseCards(cf.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	suits := e.cfg.SuitFilter()
	if cf.Suits != "" {
		if suits, err = analysis.ParseSuitFilter(cf.Suits); err != nil {
			return nil, err
		}
	}

	l := &loaded{Session: session.New(e.logger, quartz.NewReal(),
		session.WithWorkers(e.cfg.Workers), session.WithSuits(suits))}
	if l.skipped = l.ApplyText(text); len(l.skipped) > 0 {
		e.logger.Warn("Ignoring unrecognised range tokens", "tokens", l.skipped)
	}
	if l.ignored = l.SetCards(hero, board); len(l.ignored) > 0 {
		e.logger.Warn("Ignoring duplicate or excess cards", "cards", poker.FormatCards(l.ignored))
	}
	return l, nil
}
