package stats

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/verte-zerg/bikestats/internal/model"
)

// DurationStats holds total and mean trip duration in seconds.
type DurationStats struct {
	Trips int
	Total float64
	Mean  float64
}

// ComputeDurationStats sums trip durations. Mean is only meaningful when
// Trips > 0.
func ComputeDurationStats(t *model.Table) DurationStats {
	var stats DurationStats
	for _, trip := range t.Trips {
		stats.Total += trip.Duration
		stats.Trips++
	}
	if stats.Trips > 0 {
		stats.Mean = stats.Total / float64(stats.Trips)
	}
	return stats
}

// RenderDurationStats prints total and mean travel time.
func RenderDurationStats(w io.Writer, t *model.Table) error {
	stats := ComputeDurationStats(t)
	if stats.Trips == 0 {
		return writeLines(w, []string{
			"Total travel time: 0 seconds",
			"Mean travel time: no data",
		})
	}
	return writeLines(w, []string{
		fmt.Sprintf("Total travel time: %s seconds (%s)", formatSeconds(stats.Total), humanDuration(stats.Total)),
		fmt.Sprintf("Mean travel time: %.2f seconds (%s)", stats.Mean, humanDuration(stats.Mean)),
	})
}

func formatSeconds(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func humanDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}
