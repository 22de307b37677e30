package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikestats/internal/model"
)

// BirthYearStats holds the birth year range and mode.
type BirthYearStats struct {
	Earliest int
	Latest   int
	Common   Count[int]
}

// UserStats holds rider breakdowns. Genders and BirthYears are only set when
// the table schema carries the column.
type UserStats struct {
	UserTypes     []Count[string]
	Genders       []Count[string]
	BirthYears    BirthYearStats
	HasBirthYears bool
}

// ComputeUserStats counts user types and, when present, genders and birth years.
// Blank values are skipped.
func ComputeUserStats(t *model.Table) UserStats {
	var stats UserStats
	userTypes := make([]string, 0, len(t.Trips))
	var genders []string
	var years []int
	for _, trip := range t.Trips {
		if trip.UserType != "" {
			userTypes = append(userTypes, trip.UserType)
		}
		if t.Schema.HasGender && trip.Gender != "" {
			genders = append(genders, trip.Gender)
		}
		if t.Schema.HasBirthYear && trip.HasBirthYear {
			years = append(years, trip.BirthYear)
		}
	}
	stats.UserTypes = ValueCounts(userTypes)
	stats.Genders = ValueCounts(genders)
	if len(years) > 0 {
		stats.HasBirthYears = true
		stats.BirthYears.Earliest = years[0]
		stats.BirthYears.Latest = years[0]
		for _, y := range years[1:] {
			if y < stats.BirthYears.Earliest {
				stats.BirthYears.Earliest = y
			}
			if y > stats.BirthYears.Latest {
				stats.BirthYears.Latest = y
			}
		}
		stats.BirthYears.Common, _ = Mode(years)
	}
	return stats
}

// RenderUserStats prints user type, gender and birth year statistics.
func RenderUserStats(w io.Writer, t *model.Table) error {
	stats := ComputeUserStats(t)
	lines := []string{"Counts of user types:"}
	lines = append(lines, countTable("User Type", stats.UserTypes)...)
	lines = append(lines, "")

	if t.Schema.HasGender {
		lines = append(lines, "Counts of gender:")
		lines = append(lines, countTable("Gender", stats.Genders)...)
	} else {
		lines = append(lines, "Counts of gender: not available for this dataset")
	}
	lines = append(lines, "")

	switch {
	case !t.Schema.HasBirthYear:
		lines = append(lines, "Birth year statistics: not available for this dataset")
	case !stats.HasBirthYears:
		lines = append(lines, "Birth year statistics: no data")
	default:
		lines = append(lines,
			fmt.Sprintf("Earliest birth year: %d", stats.BirthYears.Earliest),
			fmt.Sprintf("Most recent birth year: %d", stats.BirthYears.Latest),
			fmt.Sprintf("Most common birth year: %d (%s)", stats.BirthYears.Common.Value, trips(stats.BirthYears.Common.Count)),
		)
	}
	return writeLines(w, lines)
}

func countTable(label string, counts []Count[string]) []string {
	if len(counts) == 0 {
		return []string{noData}
	}
	return countLines(label, counts)
}
