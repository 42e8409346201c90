package workout_test

import (
	"testing"

	"github.com/ahautala/repapp/internal/workout"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateSplit(t *testing.T) {
	tests := []struct {
		name        string
		daysPerWeek int
		want        []workout.Type
	}{
		{
			name:        "two days",
			daysPerWeek: 2,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs},
		},
		{
			name:        "three days",
			daysPerWeek: 3,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs},
		},
		{
			name:        "four days adds arms",
			daysPerWeek: 4,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs, workout.TypeArms},
		},
		{
			name:        "five days adds upper",
			daysPerWeek: 5,
			want: []workout.Type{
				workout.TypePush, workout.TypePull, workout.TypeLegs, workout.TypeArms, workout.TypeUpper,
			},
		},
		{
			name:        "six days adds lower",
			daysPerWeek: 6,
			want: []workout.Type{
				workout.TypePush, workout.TypePull, workout.TypeLegs, workout.TypeArms,
				workout.TypeUpper, workout.TypeLower,
			},
		},
		{
			name:        "one day falls back to three day split",
			daysPerWeek: 1,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs},
		},
		{
			name:        "seven days falls back to three day split",
			daysPerWeek: 7,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs},
		},
		{
			name:        "eight days falls back to three day split",
			daysPerWeek: 8,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs},
		},
		{
			name:        "zero days falls back to three day split",
			daysPerWeek: 0,
			want:        []workout.Type{workout.TypePush, workout.TypePull, workout.TypeLegs},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workout.GenerateSplit(tt.daysPerWeek)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GenerateSplit(%d) mismatch (-want +got):\n%s", tt.daysPerWeek, diff)
			}
		})
	}
}

func TestGenerateSplitHasNoRepeatedTypes(t *testing.T) {
	for daysPerWeek := range 10 {
		seen := map[workout.Type]bool{}
		for _, workoutType := range workout.GenerateSplit(daysPerWeek) {
			if seen[workoutType] {
				t.Errorf("GenerateSplit(%d) repeats %s", daysPerWeek, workoutType)
			}
			seen[workoutType] = true
		}
	}
}
