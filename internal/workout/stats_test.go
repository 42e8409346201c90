package workout_test

import (
	"testing"
	"time"

	"github.com/ahautala/repapp/internal/workout"
)

func TestGroupByDay(t *testing.T) {
	morning := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 1, 19, 30, 0, 0, time.UTC)
	nextWeek := time.Date(2025, time.June, 8, 18, 0, 0, 0, time.UTC)

	history := []workout.Session{
		{ID: "workout_1", Date: morning, Type: workout.TypePush, Completed: true},
		{ID: "workout_2", Date: evening, Type: workout.TypePull, Completed: true},
		{ID: "workout_3", Date: nextWeek, Type: workout.TypeLegs, Completed: true},
	}

	days := workout.GroupByDay(history, 30)
	if len(days) != 2 {
		t.Fatalf("GroupByDay() returned %d days, want 2", len(days))
	}
	if !days[0].Date.After(days[1].Date) {
		t.Errorf("days not sorted newest first: %v before %v", days[0].Date, days[1].Date)
	}
	if len(days[0].Sessions) != 1 || days[0].Sessions[0].ID != "workout_3" {
		t.Errorf("newest day sessions = %+v, want the June 8th session", days[0].Sessions)
	}
	if len(days[1].Sessions) != 2 {
		t.Errorf("June 1st has %d sessions, want 2", len(days[1].Sessions))
	}
}

func TestGroupByDayCapsDistinctDates(t *testing.T) {
	start := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	var history []workout.Session
	for i := range 40 {
		history = append(history, workout.Session{
			ID:        "workout_" + start.AddDate(0, 0, i).Format("20060102"),
			Date:      start.AddDate(0, 0, i),
			Type:      workout.TypePush,
			Completed: true,
		})
	}

	days := workout.GroupByDay(history, 30)
	if len(days) != 30 {
		t.Fatalf("GroupByDay() returned %d days, want cap of 30", len(days))
	}
	// The cap keeps the most recent dates and drops the oldest.
	wantNewest := start.AddDate(0, 0, 39)
	if !days[0].Date.Equal(truncate(wantNewest)) {
		t.Errorf("newest day = %v, want %v", days[0].Date, truncate(wantNewest))
	}
}

func truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func TestAggregate(t *testing.T) {
	history := []workout.Session{
		{
			Duration:  3600,
			Completed: true,
			Exercises: []workout.ExerciseSession{
				{ExerciseID: "squats", Sets: []workout.Set{{Weight: 80, Reps: 10, Completed: true}}},
				{ExerciseID: "leg_press", Sets: []workout.Set{
					{Weight: 120, Reps: 12, Completed: true},
					{Weight: 120, Reps: 10, Completed: true},
				}},
			},
		},
		{
			Duration:  1830,
			Completed: true,
			Exercises: []workout.ExerciseSession{
				{ExerciseID: "flat_bench_press", Sets: []workout.Set{{Weight: 60, Reps: 8, Completed: true}}},
			},
		},
	}

	got := workout.Aggregate(history)
	// 5430 seconds rounds to 91 minutes.
	want := workout.Totals{Workouts: 2, Sets: 4, Minutes: 91}
	if got != want {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}

	if got := workout.Aggregate(nil); got != (workout.Totals{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero totals", got)
	}
}

func TestTrainingDays(t *testing.T) {
	start := time.Date(2025, time.June, 1, 15, 0, 0, 0, time.UTC)
	profile := workout.Profile{StartDate: start}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "same day", now: start.Add(2 * time.Hour), want: 1},
		{name: "next morning", now: time.Date(2025, time.June, 2, 7, 0, 0, 0, time.UTC), want: 2},
		{name: "a week later", now: start.AddDate(0, 0, 7), want: 8},
		{name: "clock skew before start", now: start.Add(-time.Hour), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := workout.TrainingDays(profile, tt.now); got != tt.want {
				t.Errorf("TrainingDays() = %d, want %d", got, tt.want)
			}
		})
	}
}
