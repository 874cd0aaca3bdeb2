package main

import (
	"time"
)

// LoadHistory returns all training history entries, oldest first
func LoadHistory(st *Store) ([]TrainingHistoryEntry, error) {
	var entries []TrainingHistoryEntry
	if _, err := st.getJSON(keyTrainingHistory, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendHistory appends one entry to the training history. The list is
// append-only; entries are never mutated or removed.
func AppendHistory(st *Store, entry TrainingHistoryEntry) error {
	entries, err := LoadHistory(st)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return st.putJSON(keyTrainingHistory, entries)
}

// PeriodStats aggregates history entries over a reporting window
type PeriodStats struct {
	Workouts         int
	ExperienceGained int
	DurationSec      int
	Entries          []TrainingHistoryEntry
}

// StatsSince aggregates entries completed at or after the cutoff
func StatsSince(entries []TrainingHistoryEntry, cutoff time.Time) PeriodStats {
	var stats PeriodStats
	for _, e := range entries {
		if e.CompletedAt.Before(cutoff) {
			continue
		}
		stats.Workouts++
		stats.ExperienceGained += e.ExperienceGained
		stats.DurationSec += e.DurationSec
		stats.Entries = append(stats.Entries, e)
	}
	return stats
}

// StartOfDay returns midnight of t's calendar day
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
