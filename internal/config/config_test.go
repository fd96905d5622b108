package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/internal/fileutil"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "localhost:8080", cfg.ServerAddress())
	assert.Equal(t, analysis.AllSuits, cfg.SuitFilter())
	assert.Equal(t, log.InfoLevel, cfg.Level())

	btn, ok := cfg.Preset("open_btn")
	require.True(t, ok)
	assert.Equal(t, ScenarioOpen, btn.Scenario)
	_, ok = cfg.Preset("missing")
	assert.False(t, ok)
}

func TestDefaultPresetsParseCleanly(t *testing.T) {
	t.Parallel()
	for _, p := range DefaultPresets() {
		r, skipped := analysis.ParseRangeReport(p.Range)
		assert.Empty(t, skipped, p.Name)
		assert.False(t, r.IsEmpty(), p.Name)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig(t *testing.T) {
	t.Parallel()
	src := `
log_level = "debug"
suits     = "hs"
workers   = 4

server {
  port = 9090
}

preset "tight" {
  description = "Tight open"
  range       = "77+, AJs+, KQs, AQo+"
}
`
	cfg, err := ParseConfig([]byte(src), "test.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "hs", cfg.SuitFilter().String())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "localhost:9090", cfg.ServerAddress())
	assert.Equal(t, 60, cfg.Server.ReadTimeout)
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "tight", cfg.Presets[0].Name)
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "cdhs", cfg.Suits)
	assert.Equal(t, DefaultPresets(), cfg.Presets)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig([]byte(`log_level = `), "bad.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = ParseConfig([]byte(`unknown = 1`), "bad.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = ParseConfig([]byte("preset \"x\" {}\n"), "bad.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"suits", func(c *Config) { c.Suits = "hx" }, "invalid suits"},
		{"workers", func(c *Config) { c.Workers = -1 }, "invalid workers"},
		{"port", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"read timeout", func(c *Config) { c.Server.ReadTimeout = -5 }, "invalid read timeout"},
		{"duplicate preset", func(c *Config) {
			c.Presets = append(c.Presets, c.Presets[0])
		}, "duplicate preset"},
		{"empty preset", func(c *Config) {
			c.Presets = []Preset{{Name: "junk", Range: "XYZ"}}
		}, "contains no hands"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Workers = 3
	decoded, err := ParseConfig(cfg.Encode(), "encoded.hcl")
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

func TestWriteNew(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := DefaultConfig()

	require.NoError(t, cfg.WriteNew(path, false))
	assert.ErrorIs(t, cfg.WriteNew(path, false), fileutil.ErrExists)

	cfg.LogLevel = "warn"
	require.NoError(t, cfg.WriteNew(path, true))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", loaded.LogLevel)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
