package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leapsplit/internal/dataset"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !dataset.ValidDelimiter(c.DelimiterRune()) {
		return fmt.Errorf("invalid delimiter %q: must be a single character other than a quote or line break", c.Delimiter)
	}

	if c.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
			return fmt.Errorf("invalid log_level %q: use debug, info, warn or error", c.LogLevel)
		}
	}

	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q: use %s or %s", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	return nil
}
