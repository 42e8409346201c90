package workout_test

import (
	"testing"

	"github.com/ahautala/repapp/internal/workout"
)

func TestNextWorkout(t *testing.T) {
	split := []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs, workout.TypeArms}
	historyEndingWith := func(workoutType workout.Type) []workout.Session {
		return []workout.Session{
			{Type: workout.TypePush, Completed: true},
			{Type: workoutType, Completed: true},
		}
	}

	tests := []struct {
		name    string
		history []workout.Session
		want    workout.Type
	}{
		{
			name:    "empty history starts at the beginning",
			history: nil,
			want:    workout.TypePush,
		},
		{
			name:    "rotates to the next entry",
			history: historyEndingWith(workout.TypePush),
			want:    workout.TypePull,
		},
		{
			name:    "wraps around after the last entry",
			history: historyEndingWith(workout.TypeArms),
			want:    workout.TypePush,
		},
		{
			name:    "type missing from split restarts rotation",
			history: historyEndingWith(workout.TypeLower),
			want:    workout.TypePush,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workout.NextWorkout(split, tt.history); got != tt.want {
				t.Errorf("NextWorkout() = %s, want %s", got, tt.want)
			}
		})
	}
}
