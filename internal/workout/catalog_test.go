package workout_test

import (
	"testing"

	"github.com/ahautala/repapp/internal/workout"
)

func TestCatalogCoversEveryWorkoutType(t *testing.T) {
	for _, workoutType := range []workout.Type{
		workout.TypePush, workout.TypePull, workout.TypeLegs,
		workout.TypeArms, workout.TypeUpper, workout.TypeLower,
	} {
		exercises := workout.ExercisesFor(workoutType)
		if len(exercises) == 0 {
			t.Errorf("ExercisesFor(%s) is empty", workoutType)
		}
		seen := map[string]bool{}
		for _, exercise := range exercises {
			if exercise.ID == "" || exercise.Name == "" {
				t.Errorf("%s: exercise missing id or name: %+v", workoutType, exercise)
			}
			if seen[exercise.ID] {
				t.Errorf("%s: duplicate exercise id %s", workoutType, exercise.ID)
			}
			seen[exercise.ID] = true
			if exercise.RepRange.Min < 0 || exercise.RepRange.Min > exercise.RepRange.Max {
				t.Errorf("%s: invalid rep range %+v for %s", workoutType, exercise.RepRange, exercise.ID)
			}
		}
	}
}

func TestExerciseByID(t *testing.T) {
	exercise, ok := workout.ExerciseByID("squats")
	if !ok {
		t.Fatal("ExerciseByID(squats) not found")
	}
	if exercise.Name != "Squats" || exercise.MuscleGroup != "Legs" {
		t.Errorf("ExerciseByID(squats) = %+v", exercise)
	}

	if _, ok := workout.ExerciseByID("does_not_exist"); ok {
		t.Error("ExerciseByID(does_not_exist) reported found")
	}
}

func TestDisplayNames(t *testing.T) {
	tests := map[workout.Type]string{
		workout.TypePush:  "Push Day",
		workout.TypePull:  "Pull Day",
		workout.TypeLegs:  "Legs & Abs",
		workout.TypeArms:  "Arms Day",
		workout.TypeUpper: "Upper Body",
		workout.TypeLower: "Lower Body & Abs",
	}
	for workoutType, want := range tests {
		if got := workoutType.DisplayName(); got != want {
			t.Errorf("%s.DisplayName() = %q, want %q", workoutType, got, want)
		}
	}
}

func TestEstimatedMinutes(t *testing.T) {
	if got := workout.EstimatedMinutes(workout.TypePush); got != 7*8 {
		t.Errorf("EstimatedMinutes(push) = %d, want %d", got, 7*8)
	}
	if got := workout.EstimatedMinutes(workout.TypeLegs); got != 6*8 {
		t.Errorf("EstimatedMinutes(legs) = %d, want %d", got, 6*8)
	}
}
