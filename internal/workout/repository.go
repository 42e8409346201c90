package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahautala/repapp/internal/sqlite"
)

// sqliteStore implements Store on top of the two-pool SQLite database. The
// profile lives in a single-row table; completed sessions span three tables
// keyed by session id and position.
type sqliteStore struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewStore creates a SQLite-backed Store.
func NewStore(db *sqlite.Database, logger *slog.Logger) Store {
	return &sqliteStore{db: db, logger: logger}
}

// LoadProfile reads the user profile. A missing profile is not an error; it
// means onboarding has not happened yet.
func (r *sqliteStore) LoadProfile(ctx context.Context) (_ *Profile, err error) {
	var (
		profile        Profile
		onboardingDone int
	)
	err = r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT name, experience, days_per_week, intensity, goal, start_date, onboarding_done
		FROM profile
		WHERE id = 1`).Scan(
		&profile.Name, &profile.Experience, &profile.DaysPerWeek,
		&profile.Intensity, &profile.Goal, &profile.StartDate, &onboardingDone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	profile.OnboardingDone = onboardingDone != 0

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT workout_type
		FROM profile_split
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query split: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	for rows.Next() {
		var workoutType Type
		if err = rows.Scan(&workoutType); err != nil {
			return nil, fmt.Errorf("scan split entry: %w", err)
		}
		profile.CurrentSplit = append(profile.CurrentSplit, workoutType)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &profile, nil
}

// SaveProfile replaces the stored profile and its split.
func (r *sqliteStore) SaveProfile(ctx context.Context, profile Profile) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	onboardingDone := 0
	if profile.OnboardingDone {
		onboardingDone = 1
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO profile (id, name, experience, days_per_week, intensity, goal, start_date, onboarding_done)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name            = excluded.name,
			experience      = excluded.experience,
			days_per_week   = excluded.days_per_week,
			intensity       = excluded.intensity,
			goal            = excluded.goal,
			start_date      = excluded.start_date,
			onboarding_done = excluded.onboarding_done`,
		profile.Name, string(profile.Experience), profile.DaysPerWeek,
		string(profile.Intensity), string(profile.Goal), profile.StartDate, onboardingDone)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM profile_split`); err != nil {
		return fmt.Errorf("clear split: %w", err)
	}
	for i, workoutType := range profile.CurrentSplit {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO profile_split (position, workout_type) VALUES (?, ?)`,
			i, string(workoutType))
		if err != nil {
			return fmt.Errorf("insert split entry: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LoadHistory reads all completed sessions in chronological order.
func (r *sqliteStore) LoadHistory(ctx context.Context) (_ []Session, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, date, workout_type, duration_seconds, completed
		FROM workout_sessions
		ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query workout sessions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var sessions []Session
	for rows.Next() {
		var (
			session   Session
			date      time.Time
			completed int
		)
		if err = rows.Scan(&session.ID, &date, &session.Type, &session.Duration, &completed); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		session.Date = date
		session.Completed = completed != 0
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range sessions {
		if sessions[i].Exercises, err = r.loadExerciseSessions(ctx, sessions[i].ID); err != nil {
			return nil, err
		}
	}

	return sessions, nil
}

// loadExerciseSessions fetches the exercise slots and their sets for one
// session.
func (r *sqliteStore) loadExerciseSessions(ctx context.Context, sessionID string) (_ []ExerciseSession, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT es.position, es.exercise_id, s.weight, s.reps, s.completed
		FROM exercise_sessions es
		LEFT JOIN exercise_sets s
			ON s.session_id = es.session_id AND s.exercise_position = es.position
		WHERE es.session_id = ?
		ORDER BY es.position, s.position`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query exercise sessions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var exerciseSessions []ExerciseSession
	for rows.Next() {
		var (
			position   int
			exerciseID string
			weight     sql.NullFloat64
			reps       sql.NullInt64
			completed  sql.NullInt64
		)
		if err = rows.Scan(&position, &exerciseID, &weight, &reps, &completed); err != nil {
			return nil, fmt.Errorf("scan exercise set: %w", err)
		}

		// Exercise slots without sets produce a single row with NULL set
		// columns through the left join.
		for len(exerciseSessions) <= position {
			exerciseSessions = append(exerciseSessions, ExerciseSession{})
		}
		exerciseSessions[position].ExerciseID = exerciseID
		if weight.Valid {
			exerciseSessions[position].Sets = append(exerciseSessions[position].Sets, Set{
				Weight:    weight.Float64,
				Reps:      int(reps.Int64),
				Completed: completed.Int64 != 0,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return exerciseSessions, nil
}

// AppendSession stores one completed session with all its exercise slots and
// sets.
func (r *sqliteStore) AppendSession(ctx context.Context, session Session) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	completed := 0
	if session.Completed {
		completed = 1
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO workout_sessions (id, date, workout_type, duration_seconds, completed)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.Date, string(session.Type), session.Duration, completed)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for i, exerciseSession := range session.Exercises {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO exercise_sessions (session_id, position, exercise_id)
			VALUES (?, ?, ?)`,
			session.ID, i, exerciseSession.ExerciseID)
		if err != nil {
			return fmt.Errorf("insert exercise session: %w", err)
		}

		for j, set := range exerciseSession.Sets {
			setCompleted := 0
			if set.Completed {
				setCompleted = 1
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO exercise_sets (session_id, exercise_position, position, weight, reps, completed)
				VALUES (?, ?, ?, ?, ?, ?)`,
				session.ID, i, j, set.Weight, set.Reps, setCompleted)
			if err != nil {
				return fmt.Errorf("insert set: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ClearAll wipes the profile and the whole history. Cascading deletes take
// care of the session child tables.
func (r *sqliteStore) ClearAll(ctx context.Context) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	for _, stmt := range []string{
		`DELETE FROM workout_sessions`,
		`DELETE FROM profile_split`,
		`DELETE FROM profile`,
	} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear table: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "cleared all data")
	return nil
}
