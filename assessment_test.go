package main

import (
	"testing"
)

func TestStartingLevel(t *testing.T) {
	tests := []struct {
		name     string
		results  map[string]int
		expected int
	}{
		{"no reps at all", map[string]int{}, 1},
		{"below one threshold", map[string]int{exPushups: 10, exSquats: 20, exSitups: 15}, 1},
		{"exactly one threshold", map[string]int{exPushups: 20, exSquats: 20, exSitups: 20}, 2},
		{"mid range", map[string]int{exPushups: 50, exSquats: 80, exSitups: 60}, 4},
		{"capped at 10", map[string]int{exPushups: 500, exSquats: 500, exSitups: 500}, 10},
		{"negative input ignored", map[string]int{exPushups: -5, exSquats: 70, exSitups: 0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartingLevel(tt.results); got != tt.expected {
				t.Errorf("StartingLevel(%v) = %d, want %d", tt.results, got, tt.expected)
			}
		})
	}
}

func TestNewProfileDefaults(t *testing.T) {
	assessment := map[string]int{exPushups: 25, exSquats: 25, exSitups: 20}
	profile := NewProfile("Jin", SexMale, 72, 180, GoalMuscle, assessment, "2024-01-01T08:00:00Z")

	if profile.Level != StartingLevel(assessment) {
		t.Errorf("level = %d, want %d", profile.Level, StartingLevel(assessment))
	}
	if profile.Experience != 0 {
		t.Errorf("fresh profile experience = %d, want 0", profile.Experience)
	}
	if profile.LastDailyQuestDate != "" {
		t.Error("fresh profile should have no daily quest date (bootstrap sets it)")
	}
	if profile.TotalWorkoutsCompleted != 0 {
		t.Errorf("fresh profile workouts = %d, want 0", profile.TotalWorkoutsCompleted)
	}
}
