package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pixil98/go-errors"
)

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.PlayerName == "" {
		el.Add(fmt.Errorf("player_name must not be empty"))
	}
	if c.Screen.Rows < MinRows {
		el.Add(fmt.Errorf("screen.rows must be at least %d, got %d", MinRows, c.Screen.Rows))
	}
	if c.Screen.Cols < MinCols {
		el.Add(fmt.Errorf("screen.cols must be at least %d, got %d", MinCols, c.Screen.Cols))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		el.Add(fmt.Errorf("parsing log_level: %w", err))
	}

	return el.Err()
}

// Level returns the parsed log level, or info when it is invalid.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
