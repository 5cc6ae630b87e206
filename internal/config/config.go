// Package config loads the optional display preferences from
// ~/.config/lucid/config.yaml. The normalization core never reads this;
// it only shapes what the CLI and TUI print.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output selection values for the one-shot CLI.
const (
	OutputNotation    = "notation"
	OutputInstruction = "instruction"
	OutputJSON        = "json"
	OutputAll         = "all"
)

type Config struct {
	// Output is the default one-shot output mode.
	Output string `yaml:"output"`
	// Color enables lipgloss styling outside the TUI.
	Color bool `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputNotation,
		Color:  true,
	}
}

// Valid reports whether the output mode names a known renderer.
func (c *Config) Valid() error {
	switch c.Output {
	case OutputNotation, OutputInstruction, OutputJSON, OutputAll:
		return nil
	}
	return fmt.Errorf("unknown output mode %q", c.Output)
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lucid"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file. A missing file returns (nil, nil); callers
// fall back to DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Valid(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
