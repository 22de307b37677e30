// Package model defines shared data structures.
package model

import "time"

// Config defines the resolved runtime settings.
type Config struct {
	DataDir  string            `validate:"required"`
	Cities   map[string]string `validate:"dive,keys,oneof=chicago 'new york city' washington,endkeys,required"`
	Timing   bool
	Progress bool
	Plain    bool
}

// Selection is the filter triple chosen for one pass.
type Selection struct {
	City  City
	Month Month
	Day   Weekday
}

// Trip is one ride with its derived time parts.
type Trip struct {
	Start        time.Time
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	Month     int
	DayOfWeek string
	Hour      int
}

// Schema records which optional demographic columns a table carries.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// Table is the in-memory trip collection after filtering.
type Table struct {
	City      City
	Selection Selection
	Schema    Schema
	Trips     []Trip
	Warnings  []string
}

// Len returns the number of trips.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}

// Empty reports whether the table has no trips.
func (t *Table) Empty() bool {
	return t.Len() == 0
}
