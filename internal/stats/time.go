package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/bikestats/internal/model"
)

const sparkChars = " .:-=+*#%@"

// TimeStats holds the most frequent travel times.
type TimeStats struct {
	Month  Count[int]
	Day    Count[string]
	Hour   Count[int]
	ByHour [24]int
}

// ComputeTimeStats finds the modal month, weekday and start hour. ok is false
// for an empty table.
func ComputeTimeStats(t *model.Table) (stats TimeStats, ok bool) {
	if t.Empty() {
		return TimeStats{}, false
	}
	months := make([]int, len(t.Trips))
	days := make([]string, len(t.Trips))
	hours := make([]int, len(t.Trips))
	for i, trip := range t.Trips {
		months[i] = trip.Month
		days[i] = trip.DayOfWeek
		hours[i] = trip.Hour
		if trip.Hour >= 0 && trip.Hour < len(stats.ByHour) {
			stats.ByHour[trip.Hour]++
		}
	}
	stats.Month, _ = Mode(months)
	stats.Day, _ = Mode(days)
	stats.Hour, _ = Mode(hours)
	return stats, true
}

// RenderTimeStats prints the most frequent times of travel.
func RenderTimeStats(w io.Writer, t *model.Table) error {
	stats, ok := ComputeTimeStats(t)
	if !ok {
		return writeLines(w, []string{noData})
	}
	byHour := make([]float64, len(stats.ByHour))
	for i, n := range stats.ByHour {
		byHour[i] = float64(n)
	}
	return writeLines(w, []string{
		fmt.Sprintf("Most common month: %s (%s)", time.Month(stats.Month.Value), trips(stats.Month.Count)),
		fmt.Sprintf("Most common day: %s (%s)", stats.Day.Value, trips(stats.Day.Count)),
		fmt.Sprintf("Most common start hour: %d (%s)", stats.Hour.Value, trips(stats.Hour.Count)),
		fmt.Sprintf("Trips by hour (0-23): [%s]", Sparkline(byHour)),
	})
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
