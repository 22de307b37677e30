package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikestats/internal/model"
)

// StationPair is the (start, end) key of a trip.
type StationPair struct {
	Start string
	End   string
}

func (p StationPair) String() string {
	return p.Start + " <-> " + p.End
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start Count[string]
	End   Count[string]
	Trip  Count[StationPair]
}

// ComputeStationStats finds the modal start station, end station and
// start/end pair. Pairs are built per trip so start and end always come from
// the same row.
func ComputeStationStats(t *model.Table) (stats StationStats, ok bool) {
	if t.Empty() {
		return StationStats{}, false
	}
	starts := make([]string, 0, len(t.Trips))
	ends := make([]string, 0, len(t.Trips))
	pairs := make([]StationPair, 0, len(t.Trips))
	for _, trip := range t.Trips {
		if trip.StartStation != "" {
			starts = append(starts, trip.StartStation)
		}
		if trip.EndStation != "" {
			ends = append(ends, trip.EndStation)
		}
		if trip.StartStation != "" && trip.EndStation != "" {
			pairs = append(pairs, StationPair{Start: trip.StartStation, End: trip.EndStation})
		}
	}
	var okStart, okEnd, okTrip bool
	stats.Start, okStart = Mode(starts)
	stats.End, okEnd = Mode(ends)
	stats.Trip, okTrip = Mode(pairs)
	return stats, okStart || okEnd || okTrip
}

// RenderStationStats prints the most popular stations and trip.
func RenderStationStats(w io.Writer, t *model.Table) error {
	stats, ok := ComputeStationStats(t)
	if !ok {
		return writeLines(w, []string{noData})
	}
	return writeLines(w, []string{
		fmt.Sprintf("Most popular start station: %s", countLabel(stats.Start.Value, stats.Start.Count)),
		fmt.Sprintf("Most popular end station: %s", countLabel(stats.End.Value, stats.End.Count)),
		fmt.Sprintf("Most popular combination: %s", countLabel(stats.Trip.Value.String(), stats.Trip.Count)),
	})
}

func countLabel(value string, n int) string {
	if n == 0 {
		return "no data"
	}
	return fmt.Sprintf("%s (%s)", value, trips(n))
}
