package main

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	dailyQuestPrefix    = "DAILY: "
	programRewardPerLvl = 150
	questRewardPerLvl   = 100
)

// questRank maps a level to a difficulty rank (every 5 levels)
func questRank(level int) int {
	return level/5 + 1
}

// GenerateDailyQuest builds today's quest for the user. A custom program
// scheduled for today's weekday takes precedence over the generated one.
// Pure function of (level, goal, schedule match, weekday): identical inputs
// always produce an identical quest.
func GenerateDailyQuest(profile *UserProfile, programs []CustomProgram, today time.Time) Quest {
	day := WeekdayTag(today)
	for i := range programs {
		if programs[i].ScheduledOn(day) {
			return questFromProgram(&programs[i], profile.Level)
		}
	}
	return generatedQuest(profile.Goal, profile.Level)
}

// NewCustomProgram builds a program with a fresh identifier
func NewCustomProgram(name string, targets map[string]float64, custom map[string]CustomExercise, weekdays []string, now time.Time) CustomProgram {
	if len(custom) == 0 {
		custom = nil
	}
	return CustomProgram{
		ID:        uuid.NewString(),
		Name:      name,
		Targets:   targets,
		Exercises: custom,
		Weekdays:  weekdays,
		CreatedAt: now.Format(time.RFC3339),
	}
}

// sortedTargetKeys returns a quest's exercise keys in stable display order
func sortedTargetKeys(targets map[string]float64) []string {
	keys := make([]string, 0, len(targets))
	for k := range targets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func questFromProgram(prog *CustomProgram, level int) Quest {
	targets := make(map[string]float64, len(prog.Targets))
	for k, v := range prog.Targets {
		targets[k] = v
	}

	var custom map[string]CustomExercise
	if len(prog.Exercises) > 0 {
		custom = make(map[string]CustomExercise, len(prog.Exercises))
		for k, v := range prog.Exercises {
			custom[k] = v
		}
	}

	return Quest{
		Title:            dailyQuestPrefix + prog.Name,
		Rank:             questRank(level),
		Targets:          targets,
		CustomExercises:  custom,
		ExperienceReward: level * programRewardPerLvl,
		IsDaily:          true,
	}
}

func generatedQuest(goal Goal, level int) Quest {
	lvl := float64(level)
	q := Quest{
		Rank:             questRank(level),
		ExperienceReward: level * questRewardPerLvl,
		IsDaily:          true,
	}

	switch goal {
	case GoalWeightLoss:
		q.Title = "DAILY QUEST: Burn"
		q.Targets = map[string]float64{
			exSquats:  lvl * 15,
			exSitups:  lvl * 15,
			exBurpees: lvl * 5,
			exRunning: math.Min(2+lvl*0.5, 10),
		}
	case GoalSpeedStrength:
		q.Title = "DAILY QUEST: Agility"
		q.Targets = map[string]float64{
			exClapPushups: math.Ceil(lvl * 5),
			exJumpSquats:  math.Ceil(lvl * 10),
			exSitups:      math.Ceil(lvl * 10),
			exRunning:     math.Min(1+lvl*0.2, 5),
		}
	default: // muscle/strength
		q.Title = "DAILY QUEST: Strength"
		q.Targets = map[string]float64{
			exPushups: lvl * 10,
			exSquats:  lvl * 10,
			exSitups:  lvl * 10,
			exPullups: math.Ceil(lvl * 2),
		}
	}

	return q
}
