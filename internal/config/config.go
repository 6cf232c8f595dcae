package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration of one run.
type Config struct {
	InputPath string
	Render    bool
	LogLevel  string
	LogFormat string
	// Traversal selects the search used for the query: "bfs" or "dfs".
	Traversal string
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Traversal: "bfs",
	}
}

// Validate normalizes case and rejects unknown levels and formats.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.Traversal = strings.ToLower(c.Traversal)

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log-format %q: must be 'text' or 'json'", ErrInvalid, c.LogFormat)
	}
	switch c.Traversal {
	case "bfs", "dfs":
	default:
		return fmt.Errorf("%w: traversal %q: must be 'bfs' or 'dfs'", ErrInvalid, c.Traversal)
	}
	if c.InputPath == "" {
		return fmt.Errorf("%w: no input path", ErrInvalid)
	}
	return nil
}
