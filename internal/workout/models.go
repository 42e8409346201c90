package workout

import (
	"time"
)

// Type is the training focus of a workout day.
type Type string

const (
	TypePush  Type = "push"
	TypePull  Type = "pull"
	TypeLegs  Type = "legs"
	TypeArms  Type = "arms"
	TypeUpper Type = "upper"
	TypeLower Type = "lower"
)

// DisplayName returns the human-readable name for the workout day.
func (t Type) DisplayName() string {
	switch t {
	case TypePush:
		return "Push Day"
	case TypePull:
		return "Pull Day"
	case TypeLegs:
		return "Legs & Abs"
	case TypeArms:
		return "Arms Day"
	case TypeUpper:
		return "Upper Body"
	case TypeLower:
		return "Lower Body & Abs"
	}
	return string(t)
}

// Experience represents the user's self-reported training background.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Intensity represents how hard the user wants to train.
type Intensity string

const (
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
)

// Goal represents the user's primary training goal.
type Goal string

const (
	GoalMuscle   Goal = "muscle"
	GoalStrength Goal = "strength"
	GoalFitness  Goal = "fitness"
)

// RepRange is the inclusive target repetition range for an exercise.
type RepRange struct {
	Min int
	Max int
}

// Exercise represents a single exercise in the static catalog, e.g. Squats.
type Exercise struct {
	ID          string
	Name        string
	MuscleGroup string
	RepRange    RepRange
	Notes       string
	Equipment   string
}

// Set is one logged set of an exercise. Sets are never edited in place; an
// edit is a removal followed by a fresh log.
type Set struct {
	Weight    float64
	Reps      int
	Completed bool
}

// ExerciseSession groups the sets logged for one exercise during a session.
type ExerciseSession struct {
	ExerciseID string
	Sets       []Set
}

// Session is one occurrence of performing a workout day's exercises. The
// exercise list is fixed at start to the catalog's order for the workout
// type. Duration is elapsed whole seconds and stays zero until the session
// finishes.
type Session struct {
	ID        string
	Date      time.Time
	Type      Type
	Exercises []ExerciseSession
	Duration  int
	Completed bool
}

// Profile holds the user's onboarding answers and the split derived from
// them. The split is fixed at onboarding time; regenerating it requires a
// full data reset.
type Profile struct {
	Name           string
	Experience     Experience
	DaysPerWeek    int
	Intensity      Intensity
	Goal           Goal
	StartDate      time.Time
	CurrentSplit   []Type
	OnboardingDone bool
}

// Suggestion is the proposed weight and reps for the next attempt at an
// exercise.
type Suggestion struct {
	Weight float64
	Reps   int
}
