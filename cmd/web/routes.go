package main

import (
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.logAndTraceRequest(secureHeaders(app.noSurf(
					commonContext(app.timeout(next))))))))
		}
		mustOnboarded = func(next http.Handler) http.Handler {
			return session(app.mustOnboarded(next))
		}
	)

	mux.Handle("GET /onboarding", session(http.HandlerFunc(app.onboardingGET)))
	mux.Handle("POST /onboarding", session(http.HandlerFunc(app.onboardingPOST)))
	mux.Handle("GET /onboarding/goals", session(http.HandlerFunc(app.onboardingGoalsGET)))
	mux.Handle("POST /onboarding/goals", session(http.HandlerFunc(app.onboardingGoalsPOST)))

	mux.Handle("POST /workout/start", mustOnboarded(http.HandlerFunc(app.workoutStartPOST)))
	mux.Handle("GET /workout", mustOnboarded(http.HandlerFunc(app.workoutGET)))
	mux.Handle("POST /workout/sets", mustOnboarded(http.HandlerFunc(app.workoutSetPOST)))
	mux.Handle("POST /workout/sets/{setIndex}/remove", mustOnboarded(http.HandlerFunc(app.workoutSetRemovePOST)))
	mux.Handle("POST /workout/next", mustOnboarded(http.HandlerFunc(app.workoutNextPOST)))
	mux.Handle("POST /workout/previous", mustOnboarded(http.HandlerFunc(app.workoutPreviousPOST)))
	mux.Handle("POST /workout/abandon", mustOnboarded(http.HandlerFunc(app.workoutAbandonPOST)))

	mux.Handle("GET /history", mustOnboarded(http.HandlerFunc(app.historyGET)))

	mux.Handle("GET /settings", mustOnboarded(http.HandlerFunc(app.settingsGET)))
	mux.Handle("POST /settings/reset", mustOnboarded(http.HandlerFunc(app.settingsResetPOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// Everything else is a 404.
	mux.Handle("/", session(http.HandlerFunc(app.notFound)))

	return mux, nil
}
