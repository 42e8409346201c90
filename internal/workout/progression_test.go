package workout_test

import (
	"testing"
	"time"

	"github.com/ahautala/repapp/internal/workout"
	"github.com/google/go-cmp/cmp"
)

func TestSuggestProgression(t *testing.T) {
	exercise := workout.Exercise{
		ID:       "flat_bench_press",
		RepRange: workout.RepRange{Min: 8, Max: 15},
	}

	tests := []struct {
		name     string
		lastSets []workout.Set
		want     workout.Suggestion
	}{
		{
			name:     "no prior sets gives baseline at range floor",
			lastSets: nil,
			want:     workout.Suggestion{Weight: 20, Reps: 8},
		},
		{
			name:     "top of range reached adds weight and resets reps",
			lastSets: []workout.Set{{Weight: 60, Reps: 15, Completed: true}},
			want:     workout.Suggestion{Weight: 62.5, Reps: 8},
		},
		{
			name:     "above top of range adds weight and resets reps",
			lastSets: []workout.Set{{Weight: 60, Reps: 18, Completed: true}},
			want:     workout.Suggestion{Weight: 62.5, Reps: 8},
		},
		{
			name:     "inside range climbs one rep",
			lastSets: []workout.Set{{Weight: 60, Reps: 10, Completed: true}},
			want:     workout.Suggestion{Weight: 60, Reps: 11},
		},
		{
			name:     "one below top climbs to the top",
			lastSets: []workout.Set{{Weight: 60, Reps: 14, Completed: true}},
			want:     workout.Suggestion{Weight: 60, Reps: 15},
		},
		{
			name:     "below range floor backs off weight",
			lastSets: []workout.Set{{Weight: 60, Reps: 5, Completed: true}},
			want:     workout.Suggestion{Weight: 57.5, Reps: 8},
		},
		{
			name:     "back-off never goes negative",
			lastSets: []workout.Set{{Weight: 1, Reps: 2, Completed: true}},
			want:     workout.Suggestion{Weight: 0, Reps: 8},
		},
		{
			name: "only the last set counts",
			lastSets: []workout.Set{
				{Weight: 60, Reps: 15, Completed: true},
				{Weight: 60, Reps: 10, Completed: true},
			},
			want: workout.Suggestion{Weight: 60, Reps: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workout.SuggestProgression(tt.lastSets, exercise)
			if got != tt.want {
				t.Errorf("SuggestProgression() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLastCompletedSets(t *testing.T) {
	date := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)
	session := func(daysLater int, exercises ...workout.ExerciseSession) workout.Session {
		return workout.Session{
			Date:      date.AddDate(0, 0, daysLater),
			Completed: true,
			Exercises: exercises,
		}
	}

	history := []workout.Session{
		session(0, workout.ExerciseSession{
			ExerciseID: "squats",
			Sets:       []workout.Set{{Weight: 80, Reps: 10, Completed: true}},
		}),
		session(2, workout.ExerciseSession{
			ExerciseID: "squats",
			Sets: []workout.Set{
				{Weight: 85, Reps: 10, Completed: true},
				{Weight: 85, Reps: 8, Completed: false},
				{Weight: 85, Reps: 9, Completed: true},
			},
		}),
		// Most recent session includes squats but with no sets logged, so it
		// must be skipped.
		session(4, workout.ExerciseSession{ExerciseID: "squats"}),
	}

	got := workout.LastCompletedSets(history, "squats")
	want := []workout.Set{
		{Weight: 85, Reps: 10, Completed: true},
		{Weight: 85, Reps: 9, Completed: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LastCompletedSets() mismatch (-want +got):\n%s", diff)
	}

	if got := workout.LastCompletedSets(history, "leg_press"); got != nil {
		t.Errorf("LastCompletedSets() for unperformed exercise = %v, want nil", got)
	}

	if got := workout.LastCompletedSets(nil, "squats"); got != nil {
		t.Errorf("LastCompletedSets() with empty history = %v, want nil", got)
	}
}
