package main

// The onboarding assessment is three max-effort sets. The combined rep count
// places the starting level: one level per 60 total reps, capped at 10.
const (
	assessmentRepsPerLevel = 60
	assessmentLevelCap     = 10
)

// AssessmentExercises are the exercises measured during onboarding
var AssessmentExercises = []string{exPushups, exSquats, exSitups}

// StartingLevel maps assessment rep counts to the initial level
func StartingLevel(results map[string]int) int {
	total := 0
	for _, key := range AssessmentExercises {
		if reps := results[key]; reps > 0 {
			total += reps
		}
	}

	level := 1 + total/assessmentRepsPerLevel
	if level > assessmentLevelCap {
		level = assessmentLevelCap
	}
	return level
}

// NewProfile builds a fresh profile from onboarding input
func NewProfile(name string, sex Sex, weightKg, heightCm float64, goal Goal, assessment map[string]int, createdAt string) *UserProfile {
	return &UserProfile{
		Name:              name,
		Level:             StartingLevel(assessment),
		Sex:               sex,
		WeightKg:          weightKg,
		HeightCm:          heightCm,
		Goal:              goal,
		Experience:        0,
		CreatedAt:         createdAt,
		AssessmentResults: assessment,
	}
}
