package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClockProviderValidatesFileSources(t *testing.T) {
	provider := newClockProvider(30 * time.Second)

	// Bundled assets always load
	h, err := provider.Create(AudioSource{URI: "default_ost.mp3", Bundled: true})
	if err != nil {
		t.Fatalf("bundled source failed to load: %v", err)
	}
	h.Dispose()

	// File sources must exist
	if _, err := provider.Create(AudioSource{URI: "/no/such/file.mp3"}); err == nil {
		t.Error("expected error for missing file source")
	}

	path := filepath.Join(t.TempDir(), "track.mp3")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	h, err = provider.Create(AudioSource{URI: path})
	if err != nil {
		t.Fatalf("existing file source failed to load: %v", err)
	}
	h.Dispose()
}

func TestClockHandleSeekClamps(t *testing.T) {
	provider := newClockProvider(30 * time.Second)
	h, err := provider.Create(AudioSource{URI: "cue.mp3", Bundled: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer h.Dispose()

	h.Seek(-5)
	status, _ := h.Status()
	if status.PositionSec != 0 {
		t.Errorf("seek below 0 gave position %f, want 0", status.PositionSec)
	}

	h.Seek(999)
	status, _ = h.Status()
	if status.PositionSec != 30 {
		t.Errorf("seek past end gave position %f, want clamped 30", status.PositionSec)
	}
}
