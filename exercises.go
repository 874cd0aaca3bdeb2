package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Exercise keys emitted by the quest formulas
const (
	exPushups     = "pushups"
	exSquats      = "squats"
	exSitups      = "situps"
	exPullups     = "pullups"
	exBurpees     = "burpees"
	exRunning     = "running"
	exClapPushups = "clap_pushups"
	exJumpSquats  = "jump_squats"
)

// ExerciseDef describes a known exercise and how its target is measured
type ExerciseDef struct {
	Key   string       `yaml:"key"`
	Title string       `yaml:"title"`
	Unit  ExerciseUnit `yaml:"unit"`
	Icon  string       `yaml:"icon,omitempty"`
}

// ExercisePack is one YAML file of user-defined exercise definitions
type ExercisePack struct {
	Pack      string        `yaml:"pack"`
	Exercises []ExerciseDef `yaml:"exercises"`
}

var builtinExercises = []ExerciseDef{
	{Key: exPushups, Title: "Push-ups", Unit: UnitReps, Icon: "arm-flex"},
	{Key: exSquats, Title: "Squats", Unit: UnitReps, Icon: "human-handsdown"},
	{Key: exSitups, Title: "Sit-ups", Unit: UnitReps, Icon: "seat-flat"},
	{Key: exPullups, Title: "Pull-ups", Unit: UnitReps, Icon: "weight-lifter"},
	{Key: exBurpees, Title: "Burpees", Unit: UnitReps, Icon: "run-fast"},
	{Key: exRunning, Title: "Running", Unit: UnitKilometers, Icon: "run"},
	{Key: exClapPushups, Title: "Clap Push-ups", Unit: UnitReps, Icon: "hand-clap"},
	{Key: exJumpSquats, Title: "Jump Squats", Unit: UnitReps, Icon: "arrow-up-bold"},
	{Key: "plank", Title: "Plank", Unit: UnitSeconds, Icon: "timer"},
}

// Catalog resolves exercise keys to definitions
type Catalog struct {
	byKey map[string]ExerciseDef
}

// NewCatalog returns a catalog holding only the built-in exercises
func NewCatalog() *Catalog {
	c := &Catalog{byKey: make(map[string]ExerciseDef, len(builtinExercises))}
	for _, def := range builtinExercises {
		c.byKey[def.Key] = def
	}
	return c
}

// LoadCatalog returns the built-in catalog merged with any exercise packs
// found in dir. A missing directory is not an error.
func LoadCatalog(dir string) (*Catalog, error) {
	c := NewCatalog()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return c, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("error finding exercise packs: %w", err)
	}

	for _, file := range files {
		pack, err := loadExercisePack(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		for _, def := range pack.Exercises {
			if def.Key == "" {
				continue
			}
			if def.Unit == "" {
				def.Unit = UnitReps
			}
			c.byKey[def.Key] = def
		}
	}

	return c, nil
}

func loadExercisePack(path string) (*ExercisePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pack ExercisePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, err
	}

	return &pack, nil
}

// Lookup returns the definition for a key, if known
func (c *Catalog) Lookup(key string) (ExerciseDef, bool) {
	def, ok := c.byKey[key]
	return def, ok
}

// Resolve returns the definition for a quest target key, consulting the
// quest's embedded custom exercises first. Every key a generated quest emits
// resolves somewhere; the fallback covers hand-edited data.
func (c *Catalog) Resolve(q Quest, key string) ExerciseDef {
	if custom, ok := q.CustomExercises[key]; ok {
		return ExerciseDef{Key: key, Title: custom.Name, Unit: custom.Unit, Icon: custom.Icon}
	}
	if def, ok := c.byKey[key]; ok {
		return def
	}
	return ExerciseDef{Key: key, Title: key, Unit: UnitReps}
}

// FormatTarget renders a target count with its unit
func (d ExerciseDef) FormatTarget(count float64) string {
	switch d.Unit {
	case UnitKilometers:
		return fmt.Sprintf("%.1f km", count)
	case UnitSeconds:
		return fmt.Sprintf("%.0f sec", count)
	default:
		return fmt.Sprintf("%.0f reps", count)
	}
}
