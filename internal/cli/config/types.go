// Package config provides configuration management for the leapsplit CLI.
//
// Settings are layered with koanf: built-in defaults, then an optional
// leapsplit.yaml, then LEAPSPLIT_* environment variables, then flags that
// were explicitly set on the command line.
package config

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/leapsplit/internal/dataset"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputDir     string `koanf:"output_dir"`
	Delimiter     string `koanf:"delimiter"`
	ValidateArity bool   `koanf:"validate_arity"`
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
	Verbose       bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultOutputDir = "."
	DefaultDelimiter = string(dataset.DefaultDelimiter)
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
)

// Log handler formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Delimiter: DefaultDelimiter,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// DelimiterRune returns the configured delimiter as a rune.
// Call Validate first; an invalid value yields utf8.RuneError.
func (c *Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return dataset.DefaultDelimiter
	}
	if c.Delimiter == `\t` {
		return '\t'
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) {
		return utf8.RuneError
	}
	return r
}

// Level returns the slog level. Verbose always means debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
