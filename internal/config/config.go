// Package config loads the rangecount HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/internal/fileutil"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = "rangecount.hcl"

// Config represents the complete configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Suits    string          `hcl:"suits,optional"`
	Workers  int             `hcl:"workers,optional"`
	Server   *ServerSettings `hcl:"server,block"`
	Presets  []Preset        `hcl:"preset,block"`
}

// ServerSettings contains the service listener configuration
type ServerSettings struct {
	Address     string `hcl:"address,optional"`
	Port        int    `hcl:"port,optional"`
	ReadTimeout int    `hcl:"read_timeout,optional"` // seconds
}

// Preset is a named range
type Preset struct {
	Name        string `hcl:"name,label"`
	Scenario    string `hcl:"scenario,optional"`
	Description string `hcl:"description,optional"`
	Range       string `hcl:"range"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Suits:    "cdhs",
		Workers:  0,
		Server: &ServerSettings{
			Address:     "localhost",
			Port:        8080,
			ReadTimeout: 60,
		},
		Presets: DefaultPresets(),
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source and applies defaults for missing values.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Suits == "" {
		c.Suits = defaults.Suits
	}
	if c.Server == nil {
		c.Server = defaults.Server
	}
	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if len(c.Presets) == 0 {
		c.Presets = defaults.Presets
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if _, err := analysis.ParseSuitFilter(c.Suits); err != nil {
		return fmt.Errorf("invalid suits: %w", err)
	}
	if c.Workers < 0 || c.Workers > 256 {
		return fmt.Errorf("invalid workers: %d (must be between 0 and 256)", c.Workers)
	}
	if c.Server != nil {
		if c.Server.Port < 1 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid port: %d", c.Server.Port)
		}
		if c.Server.ReadTimeout < 0 {
			return fmt.Errorf("invalid read timeout: %d", c.Server.ReadTimeout)
		}
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if analysis.ParseRange(p.Range).IsEmpty() {
			return fmt.Errorf("preset %s: range %q contains no hands", p.Name, p.Range)
		}
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// SuitFilter returns the default suit filter. Invalid letters yield all suits.
func (c *Config) SuitFilter() analysis.SuitFilter {
	f, err := analysis.ParseSuitFilter(c.Suits)
	if err != nil {
		return analysis.AllSuits
	}
	return f
}

// ServerAddress returns the listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Preset returns a preset by name
func (c *Config) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Encode renders the configuration as HCL.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return hclwrite.Format(f.Bytes())
}

// WriteNew writes the configuration to filename, refusing to replace an
// existing file unless overwrite is set.
func (c *Config) WriteNew(filename string, overwrite bool) error {
	if overwrite {
		return fileutil.WriteFileAtomic(filename, c.Encode(), 0o644)
	}
	return fileutil.CreateFileAtomic(filename, c.Encode(), 0o644)
}
