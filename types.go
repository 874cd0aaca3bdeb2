package main

import (
	"fmt"
	"time"
)

// Sex is the user's sex as recorded during onboarding
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Goal is the training goal chosen during onboarding
type Goal string

const (
	GoalMuscle        Goal = "muscle"
	GoalWeightLoss    Goal = "weight_loss"
	GoalSpeedStrength Goal = "speed_strength"
)

// ParseGoal parses a goal name, accepting a few spellings
func ParseGoal(s string) (Goal, error) {
	switch s {
	case "muscle", "strength":
		return GoalMuscle, nil
	case "weight_loss", "weight-loss", "weightloss":
		return GoalWeightLoss, nil
	case "speed_strength", "speed-strength", "speed":
		return GoalSpeedStrength, nil
	}
	return "", fmt.Errorf("unknown goal: %s (use: muscle, weight_loss, speed_strength)", s)
}

// ExerciseUnit is how an exercise target count is measured
type ExerciseUnit string

const (
	UnitReps       ExerciseUnit = "reps"
	UnitSeconds    ExerciseUnit = "seconds"
	UnitKilometers ExerciseUnit = "kilometers"
)

// UserProfile is the single persisted identity and progression record
type UserProfile struct {
	Name                   string         `json:"name"`
	Level                  int            `json:"level"`
	Sex                    Sex            `json:"sex"`
	WeightKg               float64        `json:"weight"`
	HeightCm               float64        `json:"height"`
	Goal                   Goal           `json:"goal"`
	Experience             int            `json:"experience"`
	TotalWorkoutsCompleted int            `json:"totalWorkoutsCompleted"`
	CreatedAt              string         `json:"createdAt"`                    // RFC3339
	LastDailyQuestDate     string         `json:"lastDailyQuestDate,omitempty"` // date-only, YYYY-MM-DD
	CameraAssistEnabled    bool           `json:"cameraAssistEnabled"`
	ProfileImageRef        string         `json:"profileImageRef,omitempty"`
	AssessmentResults      map[string]int `json:"assessmentResults,omitempty"`
}

// CustomExercise is a user-defined exercise embedded in a program or quest
type CustomExercise struct {
	Name string       `json:"name" yaml:"name"`
	Icon string       `json:"icon,omitempty" yaml:"icon,omitempty"`
	Unit ExerciseUnit `json:"unit" yaml:"unit"`
}

// Quest is a generated workout assignment. Quests are derived, not persisted;
// only their outcome (a TrainingHistoryEntry) is.
type Quest struct {
	Title            string                    `json:"title"`
	Rank             int                       `json:"rank"`
	Targets          map[string]float64        `json:"targets"`
	CustomExercises  map[string]CustomExercise `json:"customExercises,omitempty"`
	ExperienceReward int                       `json:"experienceReward"`
	IsDaily          bool                      `json:"isDaily"`
}

// CustomProgram is a user-authored reusable quest template
type CustomProgram struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Targets   map[string]float64        `json:"targets"`
	Exercises map[string]CustomExercise `json:"exercises,omitempty"`
	Weekdays  []string                  `json:"weekdays"` // mon..sun tags
	CreatedAt string                    `json:"createdAt"`
}

// ScheduledOn reports whether the program is scheduled for the given weekday tag
func (p *CustomProgram) ScheduledOn(day string) bool {
	for _, d := range p.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeekdayTag returns the lowercase three-letter tag for a date (mon..sun)
func WeekdayTag(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "mon"
	case time.Tuesday:
		return "tue"
	case time.Wednesday:
		return "wed"
	case time.Thursday:
		return "thu"
	case time.Friday:
		return "fri"
	case time.Saturday:
		return "sat"
	default:
		return "sun"
	}
}

// TrainingHistoryEntry is an immutable record of one completed session
type TrainingHistoryEntry struct {
	CompletedAt      time.Time          `json:"completedAt"`
	Quest            Quest              `json:"quest"`
	Achieved         map[string]float64 `json:"achieved"`
	ExperienceGained int                `json:"experienceGained"`
	DurationSec      int                `json:"durationSec"`
}

// MusicTrack is a playable audio item in the playlist
type MusicTrack struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Source   string `json:"source"` // bundled asset name or file path
	Bundled  bool   `json:"bundled"`
	Favorite bool   `json:"favorite"`
	Artwork  string `json:"artwork,omitempty"`
}

// PlaybackMode governs what happens when a track finishes unassisted
type PlaybackMode int

const (
	ModeLoopAll PlaybackMode = iota // advance, wrap at end
	ModePlayAll                     // advance, stop after last
	ModeLoopOne                     // native single-track loop
	ModePlayOne                     // stop after current
)

func (m PlaybackMode) String() string {
	switch m {
	case ModeLoopAll:
		return "loop-all"
	case ModePlayAll:
		return "play-all"
	case ModeLoopOne:
		return "loop-one"
	case ModePlayOne:
		return "play-one"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParsePlaybackMode parses a mode name as used on the command line
func ParsePlaybackMode(s string) (PlaybackMode, error) {
	switch s {
	case "loop-all", "loopall":
		return ModeLoopAll, nil
	case "play-all", "playall":
		return ModePlayAll, nil
	case "loop-one", "loopone":
		return ModeLoopOne, nil
	case "play-one", "playone":
		return ModePlayOne, nil
	}
	return 0, fmt.Errorf("unknown playback mode: %s (use: loop-all, play-all, loop-one, play-one)", s)
}
