// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Format selects how rendered catalogues are written.
type Format string

const (
	// FormatText writes one identifier per line.
	FormatText Format = "text"
	// FormatJSON writes a JSON array of entries.
	FormatJSON Format = "json"
	// FormatCBOR writes a deterministic CBOR array of entries.
	FormatCBOR Format = "cbor"
	// FormatDiag writes the CBOR output in diagnostic notation.
	FormatDiag Format = "diag"
)

// Formats lists the accepted values of output.format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCBOR, FormatDiag}
}

// ColorMode controls styling of text output.
type ColorMode string

const (
	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// Config is the roomid configuration.
type Config struct {
	// Output configures how commands write results.
	Output OutputConfig `yaml:"output"`

	// Definitions configures where definition files are found.
	Definitions DefinitionsConfig `yaml:"definitions"`
}

// OutputConfig configures command output.
type OutputConfig struct {
	// Format is the default for render --format.
	// Default: text
	Format Format `yaml:"format"`

	// Color controls styled text output.
	// Values: "auto", "always", "never"
	// Default: auto
	Color ColorMode `yaml:"color"`
}

// DefinitionsConfig configures definition file lookup.
type DefinitionsConfig struct {
	// Directory is the base for relative definition paths given on
	// the command line. Empty means the working directory.
	Directory string `yaml:"directory"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
	}
}

// Load loads configuration from the ROOMID_CONFIG environment variable.
//
// There are no fallbacks: if ROOMID_CONFIG is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("ROOMID_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("ROOMID_CONFIG environment variable not set; " +
			"set it to the path of your roomid.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Fields the
// file omits keep their [Default] values. The result is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges a single configuration file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Definitions.Directory = expandVars(c.Definitions.Directory, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Provided
// vars take precedence over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if !contains(Formats(), c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format %q must be one of: %v", c.Output.Format, Formats()))
	}

	colorModes := []ColorMode{ColorAuto, ColorAlways, ColorNever}
	if !contains(colorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color %q must be one of: %v", c.Output.Color, colorModes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DefinitionPath resolves a definition file argument. Absolute paths
// and paths without a configured directory are returned unchanged;
// relative paths are joined to Definitions.Directory.
func (c *Config) DefinitionPath(path string) string {
	if c.Definitions.Directory == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Definitions.Directory, path)
}

func contains[T comparable](slice []T, s T) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
