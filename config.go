package main

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration for the application
type Config struct {
	DataDir      string `env:"ARISE_DATA_DIR"`
	ExercisesDir string `env:"ARISE_EXERCISES_DIR"`
}

// DefaultConfig returns the default configuration with environment overrides
// applied (ARISE_DATA_DIR, ARISE_EXERCISES_DIR).
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg := &Config{
		DataDir:      filepath.Join(home, ".arise"),
		ExercisesDir: filepath.Join(home, ".arise", "exercises"),
	}

	// Environment wins over defaults; parse errors keep the defaults
	if err := env.Parse(cfg); err != nil {
		return cfg
	}

	return cfg
}

// DBPath returns the path of the key-value store database
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "arise.db")
}

// TestConfig returns a configuration for testing
func TestConfig(testDir string) *Config {
	return &Config{
		DataDir:      testDir,
		ExercisesDir: filepath.Join(testDir, "exercises"),
	}
}
