// ============================================================================
// rpn2tex - RPN to LaTeX Converter
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML files
// Author:      msto63
// Created:     2026-08-31
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	// Color controls styled error output: "auto", "always", or "never"
	Color string `toml:"color" yaml:"color"`
}

// OutputConfig holds LaTeX output settings
type OutputConfig struct {
	// TimesSymbol is the LaTeX symbol emitted for '*'
	TimesSymbol string `toml:"times_symbol" yaml:"times_symbol"`
	// DivSymbol is the LaTeX symbol emitted for '/'
	DivSymbol string `toml:"div_symbol" yaml:"div_symbol"`
	// TrailingNewline appends a newline when writing to a file
	TrailingNewline bool `toml:"trailing_newline" yaml:"trailing_newline"`
}

// Default returns the configuration matching the tool's documented
// output contract
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Color: "auto",
		},
		Output: OutputConfig{
			TimesSymbol:     `\times`,
			DivSymbol:       `\div`,
			TrailingNewline: true,
		},
	}
}

// Load loads configuration from a TOML or YAML file, selected by the
// file extension (.toml, .yaml, .yml)
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the given config file, or returns defaults when no
// path is given
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults fills empty fields with their default values
func (c *Config) applyDefaults() {
	def := Default()

	if c.General.Color == "" {
		c.General.Color = def.General.Color
	}
	if c.Output.TimesSymbol == "" {
		c.Output.TimesSymbol = def.Output.TimesSymbol
	}
	if c.Output.DivSymbol == "" {
		c.Output.DivSymbol = def.Output.DivSymbol
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.General.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %q (expected auto, always, or never)", c.General.Color)
	}
	return nil
}
