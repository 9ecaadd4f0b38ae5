package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Timeouts holds the two independent timeout policies of a monitoring
// session, in seconds.
type Timeouts struct {
	AppearanceSeconds int `toml:"appearance_seconds"`
	StallSeconds      int `toml:"stall_seconds"`
}

// Tail controls the initial window shown when following starts.
type Tail struct {
	WindowLines int `toml:"window_lines"`
}

// Scheduler names the external submission command.
type Scheduler struct {
	SubmitBinary string `toml:"submit_binary"`
}

// History configures the local submission history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging controls diagnostic output on stderr. Followed log content
// always passes through to stdout untouched regardless of these
// settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full slurmtail configuration.
type Config struct {
	Timeouts  Timeouts  `toml:"timeouts"`
	Tail      Tail      `toml:"tail"`
	Scheduler Scheduler `toml:"scheduler"`
	History   History   `toml:"history"`
	Logging   Logging   `toml:"logging"`
}

// AppearanceTimeout returns the configured file-appearance timeout.
func (c *Config) AppearanceTimeout() time.Duration {
	return time.Duration(c.Timeouts.AppearanceSeconds) * time.Second
}

// StallTimeout returns the configured data-stall timeout.
func (c *Config) StallTimeout() time.Duration {
	return time.Duration(c.Timeouts.StallSeconds) * time.Second
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/slurmtail/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded. The second return value
// is the resolved path and the third reports whether a file was
// actually read; running without a config file is normal and yields the
// defaults.
func Load(path string) (*Config, string, bool, error) {
	// Best effort; a missing .env is the common case.
	_ = godotenv.Load()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("SLURMTAIL_CONFIG"))
	}

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("slurmtail.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
