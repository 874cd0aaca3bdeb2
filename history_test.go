package main

import (
	"testing"
	"time"
)

func TestHistoryAppendOnly(t *testing.T) {
	st := newTestStore(t)

	entries, err := LoadHistory(st)
	if err != nil {
		t.Fatalf("LoadHistory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh history has %d entries, want 0", len(entries))
	}

	base := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		entry := TrainingHistoryEntry{
			CompletedAt:      base.AddDate(0, 0, i),
			Quest:            Quest{Title: "DAILY QUEST: Strength", IsDaily: true},
			ExperienceGained: 100,
			DurationSec:      1200,
		}
		if err := AppendHistory(st, entry); err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}
	}

	entries, err = LoadHistory(st)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("history length = %d, want 3", len(entries))
	}
	// Oldest first
	if !entries[0].CompletedAt.Before(entries[2].CompletedAt) {
		t.Error("history order not oldest-first")
	}
}

func TestStatsSince(t *testing.T) {
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	entries := []TrainingHistoryEntry{
		{CompletedAt: base.AddDate(0, 0, -10), ExperienceGained: 100, DurationSec: 600},
		{CompletedAt: base.AddDate(0, 0, -2), ExperienceGained: 200, DurationSec: 900},
		{CompletedAt: base, ExperienceGained: 300, DurationSec: 1200},
	}

	tests := []struct {
		name         string
		cutoff       time.Time
		wantWorkouts int
		wantXP       int
		wantDuration int
	}{
		{"all time", time.Time{}, 3, 600, 2700},
		{"last week", base.AddDate(0, 0, -6), 2, 500, 2100},
		{"today only", StartOfDay(base), 1, 300, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := StatsSince(entries, tt.cutoff)
			if stats.Workouts != tt.wantWorkouts {
				t.Errorf("workouts = %d, want %d", stats.Workouts, tt.wantWorkouts)
			}
			if stats.ExperienceGained != tt.wantXP {
				t.Errorf("xp = %d, want %d", stats.ExperienceGained, tt.wantXP)
			}
			if stats.DurationSec != tt.wantDuration {
				t.Errorf("duration = %d, want %d", stats.DurationSec, tt.wantDuration)
			}
		})
	}
}
