package workout

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/ahautala/repapp/internal/errors"
)

var (
	// ErrNotOnboarded is returned for operations that need a profile before
	// onboarding has completed.
	ErrNotOnboarded = errors.NewSentinel("onboarding not completed")
	// ErrWorkoutInProgress is returned when starting a workout while another
	// one is already in progress.
	ErrWorkoutInProgress = errors.NewSentinel("workout already in progress")
	// ErrNoWorkout is returned for session operations when no workout is in
	// progress.
	ErrNoWorkout = errors.NewSentinel("no workout in progress")
	// ErrInvalidSet is returned when logging a set with non-positive weight
	// or reps.
	ErrInvalidSet = errors.NewSentinel("weight and reps must be positive")
	// ErrNoSetsLogged is returned when advancing past an exercise that has
	// no sets logged yet.
	ErrNoSetsLogged = errors.NewSentinel("no sets logged for current exercise")
)

// Store persists the user profile and the workout history. A nil profile
// with a nil error means no profile has been saved yet.
type Store interface {
	LoadProfile(ctx context.Context) (*Profile, error)
	SaveProfile(ctx context.Context, profile Profile) error
	LoadHistory(ctx context.Context) ([]Session, error)
	AppendSession(ctx context.Context, session Session) error
	ClearAll(ctx context.Context) error
}

// Service is the root state container for the workout domain. It owns the
// profile, the append-only history, and the at-most-one current session, and
// serializes all access behind a mutex.
//
// The in-memory state is authoritative. Mutations apply in memory first and
// then persist through the Store; a failed save is surfaced to the caller
// but does not roll the mutation back.
type Service struct {
	logger *slog.Logger
	store  Store
	now    func() time.Time

	mu        sync.Mutex
	profile   *Profile
	history   []Session
	current   *Session
	cursor    int
	startedAt time.Time
}

// NewService creates a Service backed by the given store. Call Load before
// using it.
func NewService(logger *slog.Logger, store Store) *Service {
	return &Service{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// Load reads the persisted profile and history into memory.
func (s *Service) Load(ctx context.Context) error {
	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		return errors.Wrap(err, "load profile")
	}
	history, err := s.store.LoadHistory(ctx)
	if err != nil {
		return errors.Wrap(err, "load history")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.history = history
	return nil
}

// Onboarded reports whether the user has completed onboarding.
func (s *Service) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil && s.profile.OnboardingDone
}

// Profile returns a copy of the user profile.
func (s *Service) Profile() (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return Profile{}, ErrNotOnboarded
	}
	return copyProfile(*s.profile), nil
}

// CompleteOnboarding derives the recurring split from the questionnaire
// answers and persists the resulting profile.
func (s *Service) CompleteOnboarding(
	ctx context.Context,
	name string,
	experience Experience,
	daysPerWeek int,
	intensity Intensity,
	goal Goal,
) (Profile, error) {
	profile := Profile{
		Name:           name,
		Experience:     experience,
		DaysPerWeek:    daysPerWeek,
		Intensity:      intensity,
		Goal:           goal,
		StartDate:      s.now(),
		CurrentSplit:   GenerateSplit(daysPerWeek),
		OnboardingDone: true,
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return profile, errors.Wrap(err, "save profile", slog.String("name", name))
	}
	return copyProfile(profile), nil
}

// NextWorkout returns the workout day type that should be offered next.
func (s *Service) NextWorkout() (Type, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return "", ErrNotOnboarded
	}
	return NextWorkout(s.profile.CurrentSplit, s.history), nil
}

// StartWorkout creates a fresh session for the workout day type with one
// empty exercise slot per catalog exercise and makes it current.
func (s *Service) StartWorkout(ctx context.Context, workoutType Type) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return Session{}, ErrWorkoutInProgress
	}

	start := s.now()
	exercises := ExercisesFor(workoutType)
	session := Session{
		ID:        fmt.Sprintf("workout_%d", start.UnixMilli()),
		Date:      start,
		Type:      workoutType,
		Exercises: make([]ExerciseSession, len(exercises)),
		Duration:  0,
		Completed: false,
	}
	for i, exercise := range exercises {
		session.Exercises[i] = ExerciseSession{ExerciseID: exercise.ID}
	}

	s.current = &session
	s.cursor = 0
	s.startedAt = start

	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout started",
		slog.String("workoutID", session.ID),
		slog.String("type", string(workoutType)))

	return copySession(session), nil
}

// Current returns a copy of the in-progress session and the exercise cursor.
func (s *Service) Current() (Session, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Session{}, 0, ErrNoWorkout
	}
	return copySession(*s.current), s.cursor, nil
}

// LogSet appends a completed set to the exercise at the given index. Both
// weight and reps must be strictly positive. An out of range index is a
// silent no-op.
func (s *Service) LogSet(exerciseIndex int, weight float64, reps int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoWorkout
	}
	if weight <= 0 || reps <= 0 {
		return ErrInvalidSet
	}
	if exerciseIndex < 0 || exerciseIndex >= len(s.current.Exercises) {
		return nil
	}

	exerciseSession := &s.current.Exercises[exerciseIndex]
	exerciseSession.Sets = append(exerciseSession.Sets, Set{
		Weight:    weight,
		Reps:      reps,
		Completed: true,
	})
	return nil
}

// RemoveSet removes the set at the given position. Out of range indices are
// silent no-ops.
func (s *Service) RemoveSet(exerciseIndex, setIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoWorkout
	}
	if exerciseIndex < 0 || exerciseIndex >= len(s.current.Exercises) {
		return nil
	}
	sets := s.current.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return nil
	}
	s.current.Exercises[exerciseIndex].Sets = append(sets[:setIndex], sets[setIndex+1:]...)
	return nil
}

// Advance moves the exercise cursor forward. It requires at least one logged
// set on the current exercise. Advancing from the last exercise finishes the
// session: the session gets its duration, is marked completed, and is
// appended to history, clearing the current slot.
//
// The returned flag reports whether the session finished.
func (s *Service) Advance(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false, ErrNoWorkout
	}
	if len(s.current.Exercises[s.cursor].Sets) == 0 {
		return false, ErrNoSetsLogged
	}

	if s.cursor < len(s.current.Exercises)-1 {
		s.cursor++
		return false, nil
	}

	return true, s.finishLocked(ctx)
}

// Retreat moves the exercise cursor backward. At the first exercise it is a
// no-op.
func (s *Service) Retreat() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoWorkout
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return nil
}

// AbandonWorkout discards the in-progress session without recording it.
func (s *Service) AbandonWorkout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoWorkout
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout abandoned",
		slog.String("workoutID", s.current.ID))
	s.current = nil
	s.cursor = 0
	return nil
}

// finishLocked completes the current session and folds it into history. The
// caller must hold s.mu.
func (s *Service) finishLocked(ctx context.Context) error {
	session := *s.current
	session.Duration = int(math.Round(s.now().Sub(s.startedAt).Seconds()))
	session.Completed = true

	s.history = append(s.history, session)
	s.current = nil
	s.cursor = 0

	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout completed",
		slog.String("workoutID", session.ID),
		slog.Int("durationSeconds", session.Duration))

	if err := s.store.AppendSession(ctx, session); err != nil {
		return errors.Wrap(err, "append session", slog.String("workoutID", session.ID))
	}
	return nil
}

// Progression returns the suggested weight and reps for the next attempt at
// the exercise. Unknown exercise ids get the baseline suggestion with a zero
// rep target.
func (s *Service) Progression(exerciseID string) Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, _ := ExerciseByID(exerciseID)
	return SuggestProgression(LastCompletedSets(s.history, exerciseID), exercise)
}

// History returns a copy of the completed sessions in chronological order.
func (s *Service) History() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]Session, len(s.history))
	for i, session := range s.history {
		history[i] = copySession(session)
	}
	return history
}

// Reset discards all persisted and in-memory data, returning the app to the
// onboarding state.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.profile = nil
	s.history = nil
	s.current = nil
	s.cursor = 0
	s.mu.Unlock()

	if err := s.store.ClearAll(ctx); err != nil {
		return errors.Wrap(err, "clear all data")
	}
	return nil
}

func copyProfile(profile Profile) Profile {
	profile.CurrentSplit = append([]Type(nil), profile.CurrentSplit...)
	return profile
}

func copySession(session Session) Session {
	exercises := make([]ExerciseSession, len(session.Exercises))
	for i, exerciseSession := range session.Exercises {
		exerciseSession.Sets = append([]Set(nil), exerciseSession.Sets...)
		exercises[i] = exerciseSession
	}
	session.Exercises = exercises
	return session
}
