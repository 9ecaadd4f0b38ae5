package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Scheduler.SubmitBinary = strings.TrimSpace(c.Scheduler.SubmitBinary)
	if c.Scheduler.SubmitBinary == "" {
		c.Scheduler.SubmitBinary = defaultSubmitBinary
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return err
	}
	c.History.Path = expanded

	return nil
}

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c *Config) Validate() error {
	if c.Timeouts.AppearanceSeconds <= 0 {
		return fmt.Errorf("config: timeouts.appearance_seconds must be positive, got %d", c.Timeouts.AppearanceSeconds)
	}
	if c.Timeouts.StallSeconds <= 0 {
		return fmt.Errorf("config: timeouts.stall_seconds must be positive, got %d", c.Timeouts.StallSeconds)
	}
	if c.Tail.WindowLines <= 0 {
		return fmt.Errorf("config: tail.window_lines must be positive, got %d", c.Tail.WindowLines)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging.format: unsupported value %q", c.Logging.Format)
	}

	return nil
}
