// Package stats contains trip aggregations and their text reports.
package stats

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const countHeader = "Trips"

// countLines lays out counts as a label column and a right-aligned trip
// column under a header row.
func countLines(label string, counts []Count[string]) []string {
	nameWidth := runewidth.StringWidth(label)
	numWidth := len(countHeader)
	nums := make([]string, len(counts))
	for i, c := range counts {
		nums[i] = strconv.Itoa(c.Count)
		nameWidth = max(nameWidth, runewidth.StringWidth(c.Value))
		numWidth = max(numWidth, len(nums[i]))
	}

	lines := make([]string, 0, len(counts)+1)
	lines = append(lines, countLine(label, countHeader, nameWidth, numWidth))
	for i, c := range counts {
		lines = append(lines, countLine(c.Value, nums[i], nameWidth, numWidth))
	}
	return lines
}

func countLine(name, num string, nameWidth, numWidth int) string {
	return runewidth.FillRight(name, nameWidth) + "  " + strings.Repeat(" ", numWidth-len(num)) + num
}
