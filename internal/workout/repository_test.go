package workout_test

import (
	"testing"
	"time"

	"github.com/ahautala/repapp/internal/sqlite"
	"github.com/ahautala/repapp/internal/testhelpers"
	"github.com/ahautala/repapp/internal/workout"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestStore(t *testing.T) workout.Store {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return workout.NewStore(db, logger)
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := newTestStore(t)

	loaded, err := store.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile on empty store: %v", err)
	}
	if loaded != nil {
		t.Fatalf("LoadProfile on empty store = %+v, want nil", loaded)
	}

	profile := workout.Profile{
		Name:           "Antti",
		Experience:     workout.ExperienceIntermediate,
		DaysPerWeek:    5,
		Intensity:      workout.IntensityHard,
		Goal:           workout.GoalStrength,
		StartDate:      time.Date(2025, time.February, 3, 9, 30, 0, 0, time.UTC),
		CurrentSplit:   workout.GenerateSplit(5),
		OnboardingDone: true,
	}
	if err = store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	loaded, err = store.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if diff := cmp.Diff(&profile, loaded, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("profile round trip mismatch (-want +got):\n%s", diff)
	}

	// Saving again overwrites instead of duplicating.
	profile.DaysPerWeek = 3
	profile.CurrentSplit = workout.GenerateSplit(3)
	if err = store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile overwrite: %v", err)
	}
	loaded, err = store.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile after overwrite: %v", err)
	}
	if diff := cmp.Diff(&profile, loaded, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("overwritten profile mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := newTestStore(t)

	sessions := []workout.Session{
		{
			ID:       "workout_1738000000000",
			Date:     time.Date(2025, time.April, 1, 18, 0, 0, 0, time.UTC),
			Type:     workout.TypePush,
			Duration: 3120,

			Completed: true,
			Exercises: []workout.ExerciseSession{
				{ExerciseID: "flat_bench_press", Sets: []workout.Set{
					{Weight: 60, Reps: 10, Completed: true},
					{Weight: 60, Reps: 9, Completed: true},
				}},
				// A slot the user skipped sets on still round-trips.
				{ExerciseID: "incline_dumbbell_press"},
			},
		},
		{
			ID:        "workout_1738100000000",
			Date:      time.Date(2025, time.April, 3, 18, 0, 0, 0, time.UTC),
			Type:      workout.TypePull,
			Duration:  2400,
			Completed: true,
			Exercises: []workout.ExerciseSession{
				{ExerciseID: "lat_pulldown", Sets: []workout.Set{
					{Weight: 50, Reps: 12, Completed: true},
				}},
			},
		},
	}
	for _, session := range sessions {
		if err := store.AppendSession(ctx, session); err != nil {
			t.Fatalf("AppendSession(%s): %v", session.ID, err)
		}
	}

	loaded, err := store.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	opts := []cmp.Option{cmpopts.EquateApproxTime(time.Second), cmpopts.EquateEmpty()}
	if diff := cmp.Diff(sessions, loaded, opts...); diff != "" {
		t.Errorf("history round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestClearAll(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := newTestStore(t)

	profile := workout.Profile{
		Name:           "Antti",
		Experience:     workout.ExperienceBeginner,
		DaysPerWeek:    3,
		Intensity:      workout.IntensityEasy,
		Goal:           workout.GoalFitness,
		StartDate:      time.Now(),
		CurrentSplit:   workout.GenerateSplit(3),
		OnboardingDone: true,
	}
	if err := store.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	session := workout.Session{
		ID:        "workout_1738000000000",
		Date:      time.Now(),
		Type:      workout.TypeLegs,
		Duration:  1800,
		Completed: true,
		Exercises: []workout.ExerciseSession{
			{ExerciseID: "squats", Sets: []workout.Set{{Weight: 80, Reps: 10, Completed: true}}},
		},
	}
	if err := store.AppendSession(ctx, session); err != nil {
		t.Fatalf("AppendSession: %v", err)
	}

	if err := store.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	loadedProfile, err := store.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile after clear: %v", err)
	}
	if loadedProfile != nil {
		t.Errorf("LoadProfile after clear = %+v, want nil", loadedProfile)
	}
	history, err := store.LoadHistory(ctx)
	if err != nil {
		t.Fatalf("LoadHistory after clear: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("LoadHistory after clear has %d sessions, want 0", len(history))
	}
}
