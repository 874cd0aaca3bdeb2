package main

import (
	"time"
)

const (
	experiencePerLevel = 600
	nonDailyReward     = 100
	missedDayPenalty   = 100
	dateOnly           = "2006-01-02"
)

// ExperienceRequired returns the experience needed to clear the given level
func ExperienceRequired(level int) int {
	return level * experiencePerLevel
}

// CompletionResult reports the outcome of a quest completion
type CompletionResult struct {
	ExperienceGained int
	LevelsGained     int
	Level            int
	Experience       int
}

// LeveledUp reports whether the completion crossed at least one level
func (r CompletionResult) LeveledUp() bool {
	return r.LevelsGained > 0
}

// ApplyQuestCompletion records a finished session: appends a history entry,
// accrues experience with level rollover, stamps the daily-quest date, and
// persists the profile and history.
func ApplyQuestCompletion(st *Store, profile *UserProfile, quest Quest, achieved map[string]float64, elapsedSec int, now time.Time) (CompletionResult, error) {
	gained := nonDailyReward
	if quest.IsDaily {
		gained = quest.ExperienceReward
	}

	entry := TrainingHistoryEntry{
		CompletedAt:      now,
		Quest:            quest,
		Achieved:         achieved,
		ExperienceGained: gained,
		DurationSec:      elapsedSec,
	}
	if err := AppendHistory(st, entry); err != nil {
		return CompletionResult{}, err
	}

	levels := accrueExperience(profile, gained)
	profile.TotalWorkoutsCompleted++
	if quest.IsDaily {
		profile.LastDailyQuestDate = now.Format(dateOnly)
	}

	if err := st.SaveProfile(profile); err != nil {
		return CompletionResult{}, err
	}

	return CompletionResult{
		ExperienceGained: gained,
		LevelsGained:     levels,
		Level:            profile.Level,
		Experience:       profile.Experience,
	}, nil
}

// accrueExperience adds experience and rolls remainder over level thresholds.
// Multiple level-ups in one call are possible; on return the invariant
// 0 <= Experience < ExperienceRequired(Level) holds.
func accrueExperience(profile *UserProfile, gained int) int {
	profile.Experience += gained

	levels := 0
	for profile.Experience >= ExperienceRequired(profile.Level) {
		profile.Experience -= ExperienceRequired(profile.Level)
		profile.Level++
		levels++
	}

	return levels
}

// PenaltyReport describes a missed-day penalty applied at startup
type PenaltyReport struct {
	MissedDays   int
	Penalty      int
	LevelsLost   int
	Bootstrapped bool // first run: no penalty, date initialized to yesterday
	Level        int
	Experience   int
}

// ApplyMissedDayPenalty deducts experience for each calendar day strictly
// between the last daily-quest completion and today. Levels decrease with the
// inverse rollover, flooring at level 1 / zero experience. The completion
// date itself is not advanced; the caller runs this once per process start.
func ApplyMissedDayPenalty(st *Store, profile *UserProfile, today time.Time) (PenaltyReport, error) {
	report := PenaltyReport{Level: profile.Level, Experience: profile.Experience}

	if profile.LastDailyQuestDate == "" {
		// First run: start the clock yesterday so today's quest counts
		profile.LastDailyQuestDate = today.AddDate(0, 0, -1).Format(dateOnly)
		report.Bootstrapped = true
		return report, st.SaveProfile(profile)
	}

	todayStr := today.Format(dateOnly)
	if profile.LastDailyQuestDate == todayStr {
		return report, nil
	}

	last, err := time.Parse(dateOnly, profile.LastDailyQuestDate)
	if err != nil {
		// Unreadable date: reset the clock instead of guessing a penalty
		profile.LastDailyQuestDate = today.AddDate(0, 0, -1).Format(dateOnly)
		report.Bootstrapped = true
		return report, st.SaveProfile(profile)
	}

	missed := daysBetween(last, today) - 1
	if missed <= 0 {
		return report, nil
	}

	penalty := missed * missedDayPenalty
	levelsLost := deductExperience(profile, penalty)

	report.MissedDays = missed
	report.Penalty = penalty
	report.LevelsLost = levelsLost
	report.Level = profile.Level
	report.Experience = profile.Experience

	return report, st.SaveProfile(profile)
}

// deductExperience subtracts experience, decrementing levels with the inverse
// rollover of accrueExperience. Never drops below level 1 / zero experience.
func deductExperience(profile *UserProfile, amount int) int {
	profile.Experience -= amount

	levels := 0
	for profile.Experience < 0 && profile.Level > 1 {
		profile.Level--
		profile.Experience += ExperienceRequired(profile.Level)
		levels++
	}
	if profile.Experience < 0 {
		profile.Experience = 0
	}

	return levels
}

// daysBetween counts whole calendar days from a to b, ignoring time of day
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
