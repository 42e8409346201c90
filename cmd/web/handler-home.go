package main

import (
	"net/http"

	"github.com/ahautala/repapp/internal/workout"
)

type homeTemplateData struct {
	BaseTemplateData
	Flash             string
	Name              string
	NextWorkout       workout.Type
	NextWorkoutName   string
	ExerciseCount     int
	EstimatedMinutes  int
	WorkoutInProgress bool
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	if !app.workoutService.Onboarded() {
		redirect(w, r, "/onboarding")
		return
	}

	profile, err := app.workoutService.Profile()
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	next, err := app.workoutService.NextWorkout()
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	_, _, currentErr := app.workoutService.Current()

	data := homeTemplateData{
		BaseTemplateData:  app.newBaseTemplateData(r),
		Flash:             app.sessionManager.PopString(r.Context(), "flash"),
		Name:              profile.Name,
		NextWorkout:       next,
		NextWorkoutName:   next.DisplayName(),
		ExerciseCount:     len(workout.ExercisesFor(next)),
		EstimatedMinutes:  workout.EstimatedMinutes(next),
		WorkoutInProgress: currentErr == nil,
	}

	app.render(w, r, http.StatusOK, "home", data)
}
