// Package config provides application configuration for schach.
package config

import "fmt"

// Config carries the user-tunable settings of the terminal application.
// The rules engine itself takes no configuration.
type Config struct {
	// Theme names the colour theme used for the board.
	Theme string

	// ASCIIPieces selects letters instead of unicode piece glyphs, for
	// terminals without the chess code points.
	ASCIIPieces bool

	// LogFile, when set, receives diagnostics. The TUI owns the
	// terminal, so nothing may be logged to stdout while it runs.
	LogFile string
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Theme: "basic",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Theme == "" {
		return fmt.Errorf("invalid configuration: theme must not be empty")
	}
	return nil
}
