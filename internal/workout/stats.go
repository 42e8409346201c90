package workout

import (
	"math"
	"sort"
	"time"
)

// Day groups the sessions performed on one calendar date.
type Day struct {
	Date     time.Time
	Sessions []Session
}

// Totals are the aggregate statistics shown on the history screen.
type Totals struct {
	Workouts int
	Sets     int
	Minutes  int
}

// GroupByDay buckets history by calendar date, newest date first, capped to
// the given number of distinct dates. Sessions beyond the cap stay in
// storage, they are just not shown.
func GroupByDay(history []Session, limit int) []Day {
	buckets := make(map[time.Time][]Session)
	for _, session := range history {
		date := truncateToDate(session.Date)
		buckets[date] = append(buckets[date], session)
	}

	days := make([]Day, 0, len(buckets))
	for date, sessions := range buckets {
		days = append(days, Day{Date: date, Sessions: sessions})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})

	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}
	return days
}

// Aggregate reduces the whole history into display totals. Duration is
// reported in whole minutes, rounded.
func Aggregate(history []Session) Totals {
	var totals Totals
	totals.Workouts = len(history)

	totalSeconds := 0
	for _, session := range history {
		totalSeconds += session.Duration
		for _, exerciseSession := range session.Exercises {
			totals.Sets += len(exerciseSession.Sets)
		}
	}
	totals.Minutes = int(math.Round(float64(totalSeconds) / 60))

	return totals
}

// TrainingDays counts the whole days elapsed since the profile was created,
// starting at 1 on the first day.
func TrainingDays(profile Profile, now time.Time) int {
	start := truncateToDate(profile.StartDate)
	today := truncateToDate(now)
	if today.Before(start) {
		return 1
	}
	// Rounding absorbs DST shifts between the two midnights.
	return int(math.Round(today.Sub(start).Hours()/24)) + 1
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
