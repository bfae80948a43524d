// Package config provides configuration file and environment variable support for timecalc.
//
// Configuration priority (highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (~/.timecalc/config.toml)
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spetersoncode/timecalc/internal/logger"
	"github.com/spetersoncode/timecalc/internal/models"
)

// Output formats accepted by --output and the output key.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config represents the timecalc configuration.
type Config struct {
	// Language is the display language (en or zh).
	// Default: en
	Language string `toml:"language" json:"language" yaml:"language"`

	// Unit is the unit used when none is given on the command line.
	// Default: hours
	Unit string `toml:"unit" json:"unit" yaml:"unit"`

	// Direction is the mode used by "calc" and the form at startup.
	// Default: before
	Direction string `toml:"direction" json:"direction" yaml:"direction"`

	// Output is the result format: text, json or yaml.
	// Default: text
	Output string `toml:"output" json:"output" yaml:"output"`

	// NoColor disables colored output.
	// Default: false
	NoColor bool `toml:"no_color" json:"no_color" yaml:"no_color"`

	Server ServerConfig `toml:"server" json:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" json:"log" yaml:"log"`
}

// ServerConfig configures "timecalc serve".
type ServerConfig struct {
	Host        string `toml:"host" json:"host" yaml:"host"`
	Port        int    `toml:"port" json:"port" yaml:"port"`
	OpenBrowser bool   `toml:"open_browser" json:"open_browser" yaml:"open_browser"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `toml:"level" json:"level" yaml:"level"`
	Format string `toml:"format" json:"format" yaml:"format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Language:  string(models.LanguageEnglish),
		Unit:      string(models.UnitHours),
		Direction: string(models.DirectionBefore),
		Output:    OutputText,
		NoColor:   false,
		Server: ServerConfig{
			Host:        "localhost",
			Port:        18090,
			OpenBrowser: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".timecalc", "config.toml")
}

// Load loads configuration from the config file and environment variables.
// Environment variables take precedence over file settings.
// Returns default config if the config file doesn't exist.
func Load() (*Config, error) {
	return LoadFromPath(DefaultConfigPath())
}

// LoadFromPath loads configuration from a specific file path.
// Environment variables take precedence over file settings.
// Returns default config if the config file doesn't exist.
func LoadFromPath(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, err
			}
		}
		// If file doesn't exist, just continue with defaults
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies environment variable overrides to the config.
func (c *Config) applyEnv() {
	if lang := os.Getenv("TIMECALC_LANGUAGE"); lang != "" {
		c.Language = lang
	}
	// TIMECALC_LANG is the short form and wins when both are set
	if lang := os.Getenv("TIMECALC_LANG"); lang != "" {
		c.Language = lang
	}

	if unit := os.Getenv("TIMECALC_UNIT"); unit != "" {
		c.Unit = unit
	}

	if dir := os.Getenv("TIMECALC_DIRECTION"); dir != "" {
		c.Direction = dir
	}

	if out := os.Getenv("TIMECALC_OUTPUT"); out != "" {
		c.Output = out
	}

	// TIMECALC_NO_COLOR and NO_COLOR - any value means true
	if _, ok := os.LookupEnv("TIMECALC_NO_COLOR"); ok {
		c.NoColor = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}

	if host := os.Getenv("TIMECALC_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("TIMECALC_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 && p < 65536 {
			c.Server.Port = p
		}
	}

	if level := os.Getenv("TIMECALC_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("TIMECALC_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
}

// Validate checks that enum-valued settings hold recognized values.
func (c *Config) Validate() error {
	if _, err := models.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("config language: %w", err)
	}
	if _, err := models.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("config unit: %w", err)
	}
	if _, err := models.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("config direction: %w", err)
	}
	if !IsValidOutput(c.Output) {
		return fmt.Errorf("config output: invalid format %q (valid: text, json, yaml)", c.Output)
	}
	return nil
}

// IsValidOutput reports whether s is a supported output format.
func IsValidOutput(s string) bool {
	switch s {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Lang returns the configured language, or English if it is unparseable.
func (c *Config) Lang() models.Language {
	if l, err := models.ParseLanguage(c.Language); err == nil {
		return l
	}
	return models.LanguageEnglish
}

// DefaultUnit returns the configured unit, or hours if it is unparseable.
func (c *Config) DefaultUnit() models.Unit {
	if u, err := models.ParseUnit(c.Unit); err == nil {
		return u
	}
	return models.UnitHours
}

// DefaultDirection returns the configured direction, or before if it is
// unparseable.
func (c *Config) DefaultDirection() models.Direction {
	if d, err := models.ParseDirection(c.Direction); err == nil {
		return d
	}
	return models.DirectionBefore
}

// LoggerConfig converts the log section for the logger package.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
	}
}

// SampleConfig returns a sample configuration file content.
func SampleConfig() string {
	return `# Timecalc Configuration File
# Location: ~/.timecalc/config.toml
#
# Configuration priority (highest to lowest):
#   1. Command-line flags
#   2. Environment variables (TIMECALC_*)
#   3. This config file
#   4. Built-in defaults

# Display language: en or zh
# Default: en
# Environment: TIMECALC_LANGUAGE or TIMECALC_LANG (TIMECALC_LANG takes precedence)
# language = "en"

# Unit used when none is given: minutes, hours, days, weeks, months, years
# Default: hours
# Environment: TIMECALC_UNIT
# unit = "hours"

# Mode for "timecalc calc" and the interactive form: before or after
# Default: before
# Environment: TIMECALC_DIRECTION
# direction = "before"

# Result format: text, json or yaml
# Default: text
# Environment: TIMECALC_OUTPUT
# output = "text"

# Disable colored output
# Default: false
# Environment: TIMECALC_NO_COLOR or NO_COLOR (any value = true)
# no_color = false

[server]
# Address for "timecalc serve"
# Environment: TIMECALC_HOST, TIMECALC_PORT
# host = "localhost"
# port = 18090
# open_browser = true

[log]
# Diagnostic logging on stderr: debug, info, warn, error / text, json
# Environment: TIMECALC_LOG_LEVEL, TIMECALC_LOG_FORMAT
# level = "warn"
# format = "text"
`
}

// WriteConfigFile writes the sample config file to the specified path.
// Creates parent directories if needed.
func WriteConfigFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(SampleConfig()), 0644)
}
