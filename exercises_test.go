package main

import (
	"testing"
)

func TestBuiltinCatalogCoversQuestKeys(t *testing.T) {
	catalog := NewCatalog()

	keys := []string{exPushups, exSquats, exSitups, exPullups, exBurpees, exRunning, exClapPushups, exJumpSquats}
	for _, key := range keys {
		def, ok := catalog.Lookup(key)
		if !ok {
			t.Errorf("built-in exercise %q missing", key)
			continue
		}
		if def.Title == "" {
			t.Errorf("exercise %q has no title", key)
		}
	}

	running, _ := catalog.Lookup(exRunning)
	if running.Unit != UnitKilometers {
		t.Errorf("running unit = %s, want kilometers", running.Unit)
	}
}

func TestLoadCatalogFromTestData(t *testing.T) {
	catalog, err := LoadCatalog("testdata/exercises")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	// Pack adds a new exercise
	wallSit, ok := catalog.Lookup("wall_sit")
	if !ok {
		t.Fatal("wall_sit from pack not loaded")
	}
	if wallSit.Unit != UnitSeconds {
		t.Errorf("wall_sit unit = %s, want seconds", wallSit.Unit)
	}
	if wallSit.Title != "Wall Sit" {
		t.Errorf("wall_sit title = %q, want Wall Sit", wallSit.Title)
	}

	// Pack overrides a built-in
	plank, _ := catalog.Lookup("plank")
	if plank.Title != "Forearm Plank" {
		t.Errorf("pack should override built-in plank, got %q", plank.Title)
	}

	// Missing unit defaults to reps
	row, ok := catalog.Lookup("inverted_row")
	if !ok {
		t.Fatal("inverted_row from pack not loaded")
	}
	if row.Unit != UnitReps {
		t.Errorf("defaulted unit = %s, want reps", row.Unit)
	}
}

func TestLoadCatalogMissingDir(t *testing.T) {
	catalog, err := LoadCatalog("testdata/does-not-exist")
	if err != nil {
		t.Fatalf("missing pack dir should not error: %v", err)
	}
	if _, ok := catalog.Lookup(exPushups); !ok {
		t.Error("built-ins missing when pack dir absent")
	}
}

func TestFormatTarget(t *testing.T) {
	tests := []struct {
		unit     ExerciseUnit
		count    float64
		expected string
	}{
		{UnitReps, 30, "30 reps"},
		{UnitSeconds, 90, "90 sec"},
		{UnitKilometers, 2.5, "2.5 km"},
	}

	for _, tt := range tests {
		def := ExerciseDef{Unit: tt.unit}
		if got := def.FormatTarget(tt.count); got != tt.expected {
			t.Errorf("FormatTarget(%s, %g) = %q, want %q", tt.unit, tt.count, got, tt.expected)
		}
	}
}
