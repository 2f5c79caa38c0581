package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "MINILANG_CONFIG"

// Config holds the complete runner configuration
type Config struct {
	Source SourceConfig `toml:"source"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Repl   ReplConfig   `toml:"repl"`
}

// SourceConfig controls how program files are accepted
type SourceConfig struct {
	Extension string `toml:"extension"`
}

// OutputConfig controls diagnostic rendering
type OutputConfig struct {
	Color *bool `toml:"color"`
}

// LogConfig controls pipeline tracing
type LogConfig struct {
	Level string `toml:"level"`
}

// ReplConfig controls the interactive session
type ReplConfig struct {
	Prompt string `toml:"prompt"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse decodes configuration from TOML text
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from MINILANG_CONFIG, falling back to
// the default locations and finally to Default().
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		defaultPaths := []string{
			"./minilang.toml",
			filepath.Join(os.Getenv("HOME"), ".config/minilang/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Source.Extension == "" {
		c.Source.Extension = ".zig"
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = ">> "
	}
}

// Validate checks field values after defaults are applied
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Source.Extension, ".") || len(c.Source.Extension) < 2 {
		return fmt.Errorf("source.extension must start with '.', got %q", c.Source.Extension)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// ColorEnabled reports whether diagnostics may use terminal styling
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// Verbose reports whether pipeline tracing is enabled
func (c *Config) Verbose() bool {
	return c.Log.Level == "debug" || c.Log.Level == "info"
}
