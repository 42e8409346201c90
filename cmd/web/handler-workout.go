package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ahautala/repapp/internal/workout"
)

type workoutTemplateData struct {
	BaseTemplateData
	Flash          string
	WorkoutName    string
	Exercise       workout.Exercise
	Sets           []workout.Set
	Suggestion     workout.Suggestion
	ExerciseNumber int
	ExerciseCount  int
	IsFirst        bool
	IsLast         bool
}

func (app *application) workoutStartPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, err)
		return
	}
	workoutType := workout.Type(r.PostForm.Get("type"))
	if len(workout.ExercisesFor(workoutType)) == 0 {
		http.NotFound(w, r)
		return
	}

	if _, err := app.workoutService.StartWorkout(r.Context(), workoutType); err != nil {
		if errors.Is(err, workout.ErrWorkoutInProgress) {
			app.sessionManager.Put(r.Context(), "flash", "You already have a workout in progress.")
			redirect(w, r, "/workout")
			return
		}
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/workout")
}

func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	session, cursor, err := app.workoutService.Current()
	if err != nil {
		if errors.Is(err, workout.ErrNoWorkout) {
			redirect(w, r, "/")
			return
		}
		app.serverError(w, r, err)
		return
	}

	exerciseSession := session.Exercises[cursor]
	exercise, ok := workout.ExerciseByID(exerciseSession.ExerciseID)
	if !ok {
		app.serverError(w, r, fmt.Errorf("unknown exercise %s", exerciseSession.ExerciseID))
		return
	}

	data := workoutTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Flash:            app.sessionManager.PopString(r.Context(), "flash"),
		WorkoutName:      session.Type.DisplayName(),
		Exercise:         exercise,
		Sets:             exerciseSession.Sets,
		Suggestion:       app.workoutService.Progression(exercise.ID),
		ExerciseNumber:   cursor + 1,
		ExerciseCount:    len(session.Exercises),
		IsFirst:          cursor == 0,
		IsLast:           cursor == len(session.Exercises)-1,
	}
	app.render(w, r, http.StatusOK, "workout", data)
}

func (app *application) workoutSetPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, cursor, err := app.workoutService.Current()
	if err != nil {
		redirect(w, r, "/")
		return
	}
	if err = r.ParseForm(); err != nil {
		app.serverError(w, r, err)
		return
	}

	weight, weightErr := strconv.ParseFloat(r.PostForm.Get("weight"), 64)
	reps, repsErr := strconv.Atoi(r.PostForm.Get("reps"))
	if weightErr != nil || repsErr != nil {
		app.sessionManager.Put(ctx, "flash", "Weight and reps must be numbers.")
		redirect(w, r, "/workout")
		return
	}

	if err = app.workoutService.LogSet(cursor, weight, reps); err != nil {
		if errors.Is(err, workout.ErrInvalidSet) {
			app.sessionManager.Put(ctx, "flash", "Weight and reps must be greater than zero.")
			redirect(w, r, "/workout")
			return
		}
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/workout")
}

func (app *application) workoutSetRemovePOST(w http.ResponseWriter, r *http.Request) {
	setIndex, ok := app.parseIndexParam(w, r, "setIndex")
	if !ok {
		return
	}
	_, cursor, err := app.workoutService.Current()
	if err != nil {
		redirect(w, r, "/")
		return
	}
	if err = app.workoutService.RemoveSet(cursor, setIndex); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/workout")
}

func (app *application) workoutNextPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	finished, err := app.workoutService.Advance(ctx)
	if err != nil {
		if errors.Is(err, workout.ErrNoSetsLogged) {
			app.sessionManager.Put(ctx, "flash", "Log at least one set before moving on.")
			redirect(w, r, "/workout")
			return
		}
		if errors.Is(err, workout.ErrNoWorkout) {
			redirect(w, r, "/")
			return
		}
		app.serverError(w, r, err)
		return
	}
	if finished {
		app.sessionManager.Put(ctx, "flash", "Workout complete. Nice work!")
		redirect(w, r, "/")
		return
	}
	redirect(w, r, "/workout")
}

func (app *application) workoutPreviousPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.Retreat(); err != nil {
		if errors.Is(err, workout.ErrNoWorkout) {
			redirect(w, r, "/")
			return
		}
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/workout")
}

func (app *application) workoutAbandonPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.AbandonWorkout(r.Context()); err != nil &&
		!errors.Is(err, workout.ErrNoWorkout) {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/")
}
