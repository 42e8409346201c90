package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ahautala/repapp/internal/ptr"
	"github.com/ahautala/repapp/internal/workout"
)

// Session keys for the in-progress onboarding questionnaire. The draft lives
// in the web session until the final step commits it to a profile.
const (
	draftNameKey        = "onboarding.name"
	draftExperienceKey  = "onboarding.experience"
	draftDaysPerWeekKey = "onboarding.daysPerWeek"
)

// onboardingDraft holds the answers collected so far. Nil means the answer
// has not been given yet, which keeps "not yet chosen" distinct from any
// real value.
type onboardingDraft struct {
	Name        *string
	Experience  *workout.Experience
	DaysPerWeek *int
}

func (d onboardingDraft) complete() bool {
	return d.Name != nil && d.Experience != nil && d.DaysPerWeek != nil
}

func (app *application) readDraft(ctx context.Context) onboardingDraft {
	var draft onboardingDraft
	if app.sessionManager.Exists(ctx, draftNameKey) {
		draft.Name = ptr.Ref(app.sessionManager.GetString(ctx, draftNameKey))
	}
	if app.sessionManager.Exists(ctx, draftExperienceKey) {
		draft.Experience = ptr.Ref(workout.Experience(app.sessionManager.GetString(ctx, draftExperienceKey)))
	}
	if app.sessionManager.Exists(ctx, draftDaysPerWeekKey) {
		draft.DaysPerWeek = ptr.Ref(app.sessionManager.GetInt(ctx, draftDaysPerWeekKey))
	}
	return draft
}

func (app *application) clearDraft(ctx context.Context) {
	app.sessionManager.Remove(ctx, draftNameKey)
	app.sessionManager.Remove(ctx, draftExperienceKey)
	app.sessionManager.Remove(ctx, draftDaysPerWeekKey)
}

type onboardingTemplateData struct {
	BaseTemplateData
	Flash string
	Draft onboardingDraft
}

func (app *application) onboardingGET(w http.ResponseWriter, r *http.Request) {
	if app.workoutService.Onboarded() {
		redirect(w, r, "/")
		return
	}

	data := onboardingTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Flash:            app.sessionManager.PopString(r.Context(), "flash"),
		Draft:            app.readDraft(r.Context()),
	}
	app.render(w, r, http.StatusOK, "onboarding", data)
}

func (app *application) onboardingPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, err)
		return
	}

	name := r.PostForm.Get("name")
	experience := workout.Experience(r.PostForm.Get("experience"))
	daysPerWeek, err := strconv.Atoi(r.PostForm.Get("days_per_week"))

	switch {
	case name == "":
		app.sessionManager.Put(ctx, "flash", "Please tell us your name.")
	case !validExperience(experience):
		app.sessionManager.Put(ctx, "flash", "Please choose your experience level.")
	case err != nil || daysPerWeek < 1:
		app.sessionManager.Put(ctx, "flash", "Please choose how many days you want to train.")
	default:
		app.sessionManager.Put(ctx, draftNameKey, name)
		app.sessionManager.Put(ctx, draftExperienceKey, string(experience))
		app.sessionManager.Put(ctx, draftDaysPerWeekKey, daysPerWeek)
		redirect(w, r, "/onboarding/goals")
		return
	}

	redirect(w, r, "/onboarding")
}

func (app *application) onboardingGoalsGET(w http.ResponseWriter, r *http.Request) {
	if app.workoutService.Onboarded() {
		redirect(w, r, "/")
		return
	}
	draft := app.readDraft(r.Context())
	if !draft.complete() {
		redirect(w, r, "/onboarding")
		return
	}

	data := onboardingTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Flash:            app.sessionManager.PopString(r.Context(), "flash"),
		Draft:            draft,
	}
	app.render(w, r, http.StatusOK, "onboarding-goals", data)
}

func (app *application) onboardingGoalsPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draft := app.readDraft(ctx)
	if !draft.complete() {
		redirect(w, r, "/onboarding")
		return
	}
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, err)
		return
	}

	intensity := workout.Intensity(r.PostForm.Get("intensity"))
	goal := workout.Goal(r.PostForm.Get("goal"))

	switch {
	case !validIntensity(intensity):
		app.sessionManager.Put(ctx, "flash", "Please choose your training intensity.")
	case !validGoal(goal):
		app.sessionManager.Put(ctx, "flash", "Please choose your goal.")
	default:
		_, err := app.workoutService.CompleteOnboarding(
			ctx, *draft.Name, *draft.Experience, *draft.DaysPerWeek, intensity, goal)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		app.clearDraft(ctx)
		app.sessionManager.Put(ctx, "flash", "Welcome aboard! Your split is ready.")
		redirect(w, r, "/")
		return
	}

	redirect(w, r, "/onboarding/goals")
}

func validExperience(experience workout.Experience) bool {
	switch experience {
	case workout.ExperienceBeginner, workout.ExperienceIntermediate, workout.ExperienceAdvanced:
		return true
	}
	return false
}

func validIntensity(intensity workout.Intensity) bool {
	switch intensity {
	case workout.IntensityEasy, workout.IntensityModerate, workout.IntensityHard:
		return true
	}
	return false
}

func validGoal(goal workout.Goal) bool {
	switch goal {
	case workout.GoalMuscle, workout.GoalStrength, workout.GoalFitness:
		return true
	}
	return false
}
