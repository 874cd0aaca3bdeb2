package main

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigEnvOverride(t *testing.T) {
	t.Setenv("ARISE_DATA_DIR", "/tmp/arise-test-data")
	t.Setenv("ARISE_EXERCISES_DIR", "/tmp/arise-test-packs")

	cfg := DefaultConfig()

	if cfg.DataDir != "/tmp/arise-test-data" {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
	if cfg.ExercisesDir != "/tmp/arise-test-packs" {
		t.Errorf("ExercisesDir = %q, want env override", cfg.ExercisesDir)
	}
	if cfg.DBPath() != filepath.Join("/tmp/arise-test-data", "arise.db") {
		t.Errorf("DBPath = %q", cfg.DBPath())
	}
}

func TestTestConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := TestConfig(dir)

	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if filepath.Dir(cfg.DBPath()) != dir {
		t.Errorf("DBPath %q not under test dir", cfg.DBPath())
	}
}
