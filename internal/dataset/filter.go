package dataset

import "github.com/verte-zerg/bikestats/internal/model"

// Filter returns the trips of t matching month and day. A month outside the
// covered months yields an empty table. Weekdays compare title-cased, so the
// filter is insensitive to the casing of either side. Filtering twice with the
// same arguments returns the same trips.
func Filter(t *model.Table, month model.Month, day model.Weekday) *model.Table {
	out := &model.Table{
		City:      t.City,
		Selection: model.Selection{City: t.City, Month: month, Day: day},
		Schema:    t.Schema,
		Warnings:  t.Warnings,
	}

	monthNumber := 0
	if !month.IsAll() {
		n, ok := month.Number()
		if !ok {
			out.Trips = []model.Trip{}
			return out
		}
		monthNumber = n
	}
	wantDay := ""
	if !day.IsAll() {
		wantDay = day.Title()
	}

	out.Trips = make([]model.Trip, 0, len(t.Trips))
	for _, trip := range t.Trips {
		if monthNumber != 0 && trip.Month != monthNumber {
			continue
		}
		if wantDay != "" && model.NormalizeDay(trip.DayOfWeek) != wantDay {
			continue
		}
		out.Trips = append(out.Trips, trip)
	}
	return out
}
