package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/bikestats/internal/model"
)

// Column names of the bikeshare datasets.
const (
	ColStartTime    = "Start Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

const maxWarnings = 10

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

var (
	errBadTimestamp = errors.New("unrecognized timestamp format")
	errBadNumber    = errors.New("not a number")
	errMissingValue = errors.New("missing value")
)

// ParseTimestamp parses a start time in any of the formats seen in bikeshare exports.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadTimestamp
}

func isMissing(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errBadNumber
	}
	return v, nil
}

// buildTable converts a raw frame into trips, deriving month, weekday and hour once.
func buildTable(f *frame, city model.City) (*model.Table, error) {
	required := []string{ColStartTime, ColStartStation, ColEndStation, ColTripDuration, ColUserType}
	cols := make(map[string][]string, len(required))
	for _, name := range required {
		col, ok := f.column(name)
		if !ok {
			return nil, &DataFormatError{Source: f.source, Column: name, Err: ErrMissingColumn}
		}
		cols[name] = col
	}
	genders, hasGender := f.column(ColGender)
	births, hasBirthYear := f.column(ColBirthYear)

	table := &model.Table{
		City: city,
		Selection: model.Selection{
			City:  city,
			Month: model.MonthAll,
			Day:   model.WeekdayAll,
		},
		Schema: model.Schema{
			HasGender:    hasGender,
			HasBirthYear: hasBirthYear,
		},
		Trips: make([]model.Trip, 0, f.rows),
	}

	var warnings []string
	dropped := 0
	warn := func(msg string) {
		dropped++
		if len(warnings) < maxWarnings {
			warnings = append(warnings, msg)
		}
	}

	for i := 0; i < f.rows; i++ {
		row := i + 1
		rawStart := cols[ColStartTime][i]
		if isMissing(rawStart) {
			return nil, &DataFormatError{Source: f.source, Row: row, Column: ColStartTime, Value: rawStart, Err: errMissingValue}
		}
		start, err := ParseTimestamp(rawStart)
		if err != nil {
			return nil, &DataFormatError{Source: f.source, Row: row, Column: ColStartTime, Value: rawStart, Err: err}
		}
		rawDuration := cols[ColTripDuration][i]
		duration, err := parseNumber(rawDuration)
		if err != nil {
			return nil, &DataFormatError{Source: f.source, Row: row, Column: ColTripDuration, Value: rawDuration, Err: err}
		}

		trip := model.Trip{
			Start:        start,
			StartStation: cleanText(cols[ColStartStation][i]),
			EndStation:   cleanText(cols[ColEndStation][i]),
			Duration:     duration,
			UserType:     cleanText(cols[ColUserType][i]),
			Month:        int(start.Month()),
			DayOfWeek:    start.Weekday().String(),
			Hour:         start.Hour(),
		}
		if hasGender {
			trip.Gender = cleanText(genders[i])
		}
		if hasBirthYear && !isMissing(births[i]) {
			year, err := parseNumber(births[i])
			if err != nil {
				warn(fmt.Sprintf("%s: row %d: ignoring invalid %s %q", f.source, row, ColBirthYear, births[i]))
			} else {
				trip.BirthYear = int(year)
				trip.HasBirthYear = true
			}
		}
		table.Trips = append(table.Trips, trip)
	}

	if dropped > len(warnings) {
		warnings = append(warnings, fmt.Sprintf("%s: %d more invalid values ignored", f.source, dropped-len(warnings)))
	}
	table.Warnings = warnings
	return table, nil
}

func cleanText(s string) string {
	if isMissing(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
