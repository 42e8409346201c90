package main

import (
	"net/http"
	"time"

	"github.com/ahautala/repapp/internal/workout"
)

type historySessionView struct {
	Name            string
	DurationMinutes int
	Sets            int
}

type historyDayView struct {
	Date     time.Time
	Sessions []historySessionView
}

type historyTemplateData struct {
	BaseTemplateData
	Days   []historyDayView
	Totals workout.Totals
}

func (app *application) historyGET(w http.ResponseWriter, r *http.Request) {
	history := app.workoutService.History()

	days := workout.GroupByDay(history, app.calendarDays)
	views := make([]historyDayView, 0, len(days))
	for _, day := range days {
		view := historyDayView{Date: day.Date}
		for _, session := range day.Sessions {
			sets := 0
			for _, exercise := range session.Exercises {
				sets += len(exercise.Sets)
			}
			view.Sessions = append(view.Sessions, historySessionView{
				Name:            session.Type.DisplayName(),
				DurationMinutes: session.Duration / 60,
				Sets:            sets,
			})
		}
		views = append(views, view)
	}

	data := historyTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Days:             views,
		Totals:           workout.Aggregate(history),
	}
	app.render(w, r, http.StatusOK, "history", data)
}
