package stats

import "sort"

// Count is a value with its number of occurrences.
type Count[K comparable] struct {
	Value K
	Count int
}

// ValueCounts returns the distinct values ordered by frequency, highest first.
// Values with equal frequency keep the order of their first occurrence.
func ValueCounts[K comparable](values []K) []Count[K] {
	if len(values) == 0 {
		return nil
	}
	index := make(map[K]int)
	counts := make([]Count[K], 0)
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count[K]{Value: v})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Mode returns the most frequent value. Ties go to the value seen first.
// ok is false for empty input.
func Mode[K comparable](values []K) (mode Count[K], ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return Count[K]{}, false
	}
	return counts[0], true
}
