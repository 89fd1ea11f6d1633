// Package config provides YAML-based configuration loading for doom.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/doom/internal/game"
)

// Smallest terminal the game can be played in.
const (
	MinRows = 25
	MinCols = 80
)

//go:embed defaults/doom.yaml
var defaultYAML []byte

// Config holds everything that can be set from a config file, the
// environment or the command line.
type Config struct {
	PlayerName string       `yaml:"player_name"`
	Seed       int64        `yaml:"seed"` // 0 = wall clock
	Screen     ScreenConfig `yaml:"screen"`
	LogFile    string       `yaml:"log_file"`
	LogLevel   string       `yaml:"log_level"` // debug, info, warn or error
	ScoreDB    string       `yaml:"score_db"`
	Telemetry  bool         `yaml:"telemetry"`
}

// ScreenConfig is the size of the game frame. The terminal must be at
// least this big.
type ScreenConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{
			PlayerName: game.DefaultName,
			Screen:     ScreenConfig{Rows: MinRows, Cols: MinCols},
			LogLevel:   "info",
		}
	}
	return cfg
}

// Load reads the configuration. Keys missing from the file keep their
// default values.
// Search order: customPath -> $XDG_CONFIG_HOME/doom/config.yaml -> ./configs/doom.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{UserPath("config.yaml"), filepath.Join("configs", "doom.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return cfg, nil
}

// Game returns the options the game itself needs.
func (c Config) Game() game.Config {
	return game.Config{Name: c.PlayerName, Seed: c.Seed}
}

// Dir returns the per-user configuration directory, or empty if it cannot
// be determined.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "doom")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "doom")
}

// UserPath returns the path of a file in the user configuration directory.
func UserPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
