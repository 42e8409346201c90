package main

import (
	"net/http"
	"time"

	"github.com/ahautala/repapp/internal/workout"
)

type settingsTemplateData struct {
	BaseTemplateData
	Profile      workout.Profile
	Split        []string
	TrainingDays int
}

func (app *application) settingsGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.workoutService.Profile()
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	split := make([]string, 0, len(profile.CurrentSplit))
	for _, workoutType := range profile.CurrentSplit {
		split = append(split, workoutType.DisplayName())
	}

	data := settingsTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Profile:          profile,
		Split:            split,
		TrainingDays:     workout.TrainingDays(profile, time.Now()),
	}
	app.render(w, r, http.StatusOK, "settings", data)
}

func (app *application) settingsResetPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := app.workoutService.Reset(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	if err := app.sessionManager.Destroy(ctx); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/onboarding")
}
