package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bikestats/internal/model"
)

const noData = "No data available for the selected filters."

// Separator closes every report section.
var Separator = strings.Repeat("-", 40)

var headingStyle = lipgloss.NewStyle().Bold(true)

// Section is one reporter of the trip report.
type Section struct {
	Title  string
	Render func(io.Writer, *model.Table) error
}

// Sections lists the reporters in print order.
var Sections = []Section{
	{Title: "Calculating The Most Frequent Times of Travel...", Render: RenderTimeStats},
	{Title: "Calculating The Most Popular Stations and Trip...", Render: RenderStationStats},
	{Title: "Calculating Trip Duration...", Render: RenderDurationStats},
	{Title: "Calculating User Stats...", Render: RenderUserStats},
}

// Options controls report output.
type Options struct {
	Timing bool
	Now    func() time.Time
}

// WriteReport prints a summary line followed by every section.
func WriteReport(w io.Writer, t *model.Table, opts Options) error {
	if err := writeLines(w, []string{Summary(t)}); err != nil {
		return err
	}
	for _, s := range Sections {
		if err := WriteSection(w, s, t, opts); err != nil {
			return err
		}
	}
	return nil
}

// WriteSection prints one section framed by its title, the optional elapsed
// time and the separator.
func WriteSection(w io.Writer, s Section, t *model.Table, opts Options) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if err := writeLines(w, []string{"", headingStyle.Render(s.Title), ""}); err != nil {
		return err
	}
	start := now()
	if err := s.Render(w, t); err != nil {
		return err
	}
	var tail []string
	if opts.Timing {
		tail = append(tail, "", fmt.Sprintf("This took %.4f seconds.", now().Sub(start).Seconds()))
	}
	tail = append(tail, Separator)
	return writeLines(w, tail)
}

// Summary describes the table being reported.
func Summary(t *model.Table) string {
	sel := t.Selection
	return fmt.Sprintf("%s: %s (month: %s, day: %s)", t.City.Title(), trips(t.Len()), sel.Month, sel.Day)
}

func trips(n int) string {
	if n == 1 {
		return "1 trip"
	}
	return fmt.Sprintf("%d trips", n)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
