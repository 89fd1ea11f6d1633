package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file.
const (
	EnvName    = "DOOM_NAME"
	EnvSeed    = "DOOM_SEED"
	EnvScoreDB = "DOOM_SCORE_DB"
)

// LoadDotEnv loads variables from .env files into the environment. Missing
// files are not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from DOOM_* environment variables.
func (c *Config) ApplyEnv() error {
	if name := os.Getenv(EnvName); name != "" {
		c.PlayerName = name
	}
	if seed := os.Getenv(EnvSeed); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		c.Seed = v
	}
	if db := os.Getenv(EnvScoreDB); db != "" {
		c.ScoreDB = db
	}
	return nil
}
