package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/bikestats/internal/model"
)

func trip(start time.Time, from, to string, duration float64) model.Trip {
	return model.Trip{
		Start:        start,
		StartStation: from,
		EndStation:   to,
		Duration:     duration,
		UserType:     "Subscriber",
		Month:        int(start.Month()),
		DayOfWeek:    start.Weekday().String(),
		Hour:         start.Hour(),
	}
}

func sampleTable() *model.Table {
	jan := time.Date(2017, 1, 2, 17, 0, 0, 0, time.UTC)
	return &model.Table{
		City:      model.Chicago,
		Selection: model.Selection{City: model.Chicago, Month: model.MonthAll, Day: model.WeekdayAll},
		Trips: []model.Trip{
			trip(jan, "A", "B", 120),
			trip(jan.Add(time.Hour), "A", "B", 340),
			trip(jan.AddDate(0, 1, 0), "C", "D", 120),
		},
	}
}

func emptyTable(schema model.Schema) *model.Table {
	return &model.Table{
		City:      model.Washington,
		Selection: model.Selection{City: model.Washington, Month: "june", Day: "sunday"},
		Schema:    schema,
		Trips:     []model.Trip{},
	}
}

func render(t *testing.T, fn func(w *bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestDurationScenario(t *testing.T) {
	stats := ComputeDurationStats(sampleTable())
	if stats.Total != 580 {
		t.Fatalf("expected total 580, got %v", stats.Total)
	}
	if stats.Mean < 193.33 || stats.Mean > 193.34 {
		t.Fatalf("expected mean ~193.33, got %v", stats.Mean)
	}
	out := render(t, func(w *bytes.Buffer) error { return RenderDurationStats(w, sampleTable()) })
	if !strings.Contains(out, "Total travel time: 580 seconds (9m40s)") {
		t.Fatalf("unexpected total line:\n%s", out)
	}
	if !strings.Contains(out, "Mean travel time: 193.33 seconds (3m13s)") {
		t.Fatalf("unexpected mean line:\n%s", out)
	}
}

func TestStationPairScenario(t *testing.T) {
	stats, ok := ComputeStationStats(sampleTable())
	if !ok {
		t.Fatalf("expected station stats")
	}
	if stats.Trip.Value.String() != "A <-> B" || stats.Trip.Count != 2 {
		t.Fatalf("unexpected pair mode %+v", stats.Trip)
	}
	if stats.Start.Value != "A" || stats.End.Value != "B" {
		t.Fatalf("unexpected station modes %+v", stats)
	}
}

func TestStationPairsStayRowAligned(t *testing.T) {
	table := &model.Table{Trips: []model.Trip{
		{StartStation: "A", EndStation: "D"},
		{StartStation: "C", EndStation: "B"},
		{StartStation: "A", EndStation: "D"},
		{StartStation: "C", EndStation: "B"},
		{StartStation: "A", EndStation: "B"},
	}}
	stats, _ := ComputeStationStats(table)
	if stats.Trip.Value != (StationPair{Start: "A", End: "D"}) {
		t.Fatalf("expected first tied pair A <-> D, got %s", stats.Trip.Value)
	}
	if stats.Trip.Count != 2 {
		t.Fatalf("unexpected pair count %d", stats.Trip.Count)
	}
}

func TestTimeStats(t *testing.T) {
	stats, ok := ComputeTimeStats(sampleTable())
	if !ok {
		t.Fatalf("expected time stats")
	}
	if stats.Month.Value != 1 || stats.Month.Count != 2 {
		t.Fatalf("unexpected month mode %+v", stats.Month)
	}
	if stats.Day.Value != "Monday" {
		t.Fatalf("unexpected day mode %+v", stats.Day)
	}
	if stats.Hour.Value != 17 {
		t.Fatalf("unexpected hour mode %+v", stats.Hour)
	}
	if stats.ByHour[17] != 2 || stats.ByHour[18] != 1 {
		t.Fatalf("unexpected hour histogram %v", stats.ByHour)
	}
	out := render(t, func(w *bytes.Buffer) error { return RenderTimeStats(w, sampleTable()) })
	if !strings.Contains(out, "Most common month: January (2 trips)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestUserStatsWithDemographics(t *testing.T) {
	table := sampleTable()
	table.Schema = model.Schema{HasGender: true, HasBirthYear: true}
	table.Trips[0].Gender, table.Trips[0].BirthYear, table.Trips[0].HasBirthYear = "Female", 1990, true
	table.Trips[1].Gender, table.Trips[1].BirthYear, table.Trips[1].HasBirthYear = "Male", 1985, true
	table.Trips[2].UserType = "Customer"
	table.Trips[2].BirthYear, table.Trips[2].HasBirthYear = 1985, true

	stats := ComputeUserStats(table)
	if len(stats.UserTypes) != 2 || stats.UserTypes[0] != (Count[string]{Value: "Subscriber", Count: 2}) {
		t.Fatalf("unexpected user types %+v", stats.UserTypes)
	}
	if len(stats.Genders) != 2 || stats.Genders[0].Value != "Female" {
		t.Fatalf("unexpected genders %+v", stats.Genders)
	}
	if stats.BirthYears.Earliest != 1985 || stats.BirthYears.Latest != 1990 || stats.BirthYears.Common.Value != 1985 {
		t.Fatalf("unexpected birth years %+v", stats.BirthYears)
	}
	out := render(t, func(w *bytes.Buffer) error { return RenderUserStats(w, table) })
	for _, want := range []string{"Subscriber", "Most common birth year: 1985 (2 trips)", "Earliest birth year: 1985"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUserStatsWithoutDemographics(t *testing.T) {
	out := render(t, func(w *bytes.Buffer) error { return RenderUserStats(w, sampleTable()) })
	if !strings.Contains(out, "Counts of gender: not available") {
		t.Fatalf("expected gender not available:\n%s", out)
	}
	if !strings.Contains(out, "Birth year statistics: not available") {
		t.Fatalf("expected birth year not available:\n%s", out)
	}
}

func TestReportersHandleEmptyTable(t *testing.T) {
	table := emptyTable(model.Schema{HasGender: true, HasBirthYear: true})
	for _, s := range Sections {
		out := render(t, func(w *bytes.Buffer) error { return s.Render(w, table) })
		if !strings.Contains(out, noData) && !strings.Contains(out, "no data") {
			t.Fatalf("%s: expected no-data output, got:\n%s", s.Title, out)
		}
	}
	out := render(t, func(w *bytes.Buffer) error { return RenderDurationStats(w, table) })
	if !strings.Contains(out, "Total travel time: 0 seconds") {
		t.Fatalf("unexpected empty duration output:\n%s", out)
	}
}

func TestWriteReport(t *testing.T) {
	clock := time.Unix(0, 0)
	opts := Options{
		Timing: true,
		Now: func() time.Time {
			clock = clock.Add(250 * time.Millisecond)
			return clock
		},
	}
	out := render(t, func(w *bytes.Buffer) error { return WriteReport(w, sampleTable(), opts) })
	if !strings.HasPrefix(out, "Chicago: 3 trips (month: all, day: all)") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if got := strings.Count(out, Separator); got != len(Sections) {
		t.Fatalf("expected %d separators, got %d", len(Sections), got)
	}
	if !strings.Contains(out, "This took 0.2500 seconds.") {
		t.Fatalf("expected timing line:\n%s", out)
	}
	for _, s := range Sections {
		if !strings.Contains(out, s.Title) {
			t.Fatalf("missing section %q", s.Title)
		}
	}
}

func TestWriteReportWithoutTiming(t *testing.T) {
	out := render(t, func(w *bytes.Buffer) error { return WriteReport(w, emptyTable(model.Schema{}), Options{}) })
	if strings.Contains(out, "This took") {
		t.Fatalf("timing printed when disabled:\n%s", out)
	}
	if !strings.HasPrefix(out, "Washington: 0 trips (month: june, day: sunday)") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 5, 10}); got != " +@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3}); got != "++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}
