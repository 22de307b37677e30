package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// City names a supported bikeshare dataset.
type City string

// Supported cities.
const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists the supported cities in menu order.
var Cities = []City{Chicago, NewYorkCity, Washington}

// Title returns the display name, e.g. "New York City".
func (c City) Title() string {
	return titleCase(string(c))
}

// ParseCity maps user input to a City.
func ParseCity(s string) (City, error) {
	s = normalize(s)
	for _, c := range Cities {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown city %q (available: %s)", s, joinNames(Cities))
}

// Month is a month filter value. All disables filtering.
type Month string

// MonthAll disables the month filter.
const MonthAll Month = "all"

// Months lists the months covered by the datasets.
var Months = []Month{"january", "february", "march", "april", "may", "june"}

// MonthOptions lists the month menu entries.
func MonthOptions() []Month {
	return append([]Month{MonthAll}, Months...)
}

// Number returns the 1-based position of m in Months.
// Names outside Months report false.
func (m Month) Number() (int, bool) {
	name := normalize(string(m))
	for i, candidate := range Months {
		if string(candidate) == name {
			return i + 1, true
		}
	}
	return 0, false
}

// IsAll reports whether m disables filtering.
func (m Month) IsAll() bool {
	return normalize(string(m)) == string(MonthAll)
}

// ParseMonth maps user input to a menu month.
func ParseMonth(s string) (Month, error) {
	s = normalize(s)
	for _, m := range MonthOptions() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown month %q (available: %s)", s, joinNames(MonthOptions()))
}

// Weekday is a day-of-week filter value. All disables filtering.
type Weekday string

// WeekdayAll disables the weekday filter.
const WeekdayAll Weekday = "all"

// Weekdays lists the days in menu order.
var Weekdays = []Weekday{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayOptions lists the weekday menu entries.
func WeekdayOptions() []Weekday {
	return append([]Weekday{WeekdayAll}, Weekdays...)
}

// IsAll reports whether d disables filtering.
func (d Weekday) IsAll() bool {
	return normalize(string(d)) == string(WeekdayAll)
}

// Title returns the title-cased day name used by derived columns.
func (d Weekday) Title() string {
	return NormalizeDay(string(d))
}

// ParseWeekday maps user input to a menu weekday.
func ParseWeekday(s string) (Weekday, error) {
	s = normalize(s)
	for _, d := range WeekdayOptions() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day %q (available: %s)", s, joinNames(WeekdayOptions()))
}

// NormalizeDay title-cases a weekday name so "monday" and "MONDAY" compare equal.
func NormalizeDay(s string) string {
	return titleCase(normalize(s))
}

// String renders the selection for headers and logs.
func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func joinNames[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
