package sim

import (
	"sort"
	"time"
)

// defaultFraction is assumed for any hour absent from a pattern table.
const defaultFraction = 0.1

// Typical dining hall demand patterns: hour of day -> expected fraction of
// capacity. Hours outside the table (overnight, early morning) fall back to
// defaultFraction.
var weekdayPattern = map[int]float64{
	7:  0.15, // light breakfast
	8:  0.25,
	9:  0.20,
	10: 0.10,
	11: 0.35, // lunch rush starts
	12: 0.65, // peak lunch
	13: 0.55,
	14: 0.30,
	15: 0.15,
	16: 0.20,
	17: 0.45, // dinner starts
	18: 0.75, // peak dinner
	19: 0.65,
	20: 0.40,
	21: 0.20,
	22: 0.10,
}

var weekendPattern = map[int]float64{
	9:  0.20, // brunch
	10: 0.35,
	11: 0.45,
	12: 0.55, // peak brunch
	13: 0.40,
	14: 0.25,
	15: 0.15,
	16: 0.20,
	17: 0.40,
	18: 0.60, // dinner
	19: 0.50,
	20: 0.30,
	21: 0.15,
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// patternFor selects the demand pattern for the given date.
func patternFor(t time.Time) map[int]float64 {
	if IsWeekend(t) {
		return weekendPattern
	}
	return weekdayPattern
}

// fractionAt looks up the expected occupancy fraction for an hour, falling
// back to defaultFraction for hours the table does not cover.
func fractionAt(pattern map[int]float64, hour int) float64 {
	if f, ok := pattern[hour]; ok {
		return f
	}
	return defaultFraction
}

// averageFraction is the mean of all fractions present in a pattern table.
func averageFraction(pattern map[int]float64) float64 {
	var sum float64
	for _, f := range pattern {
		sum += f
	}
	return sum / float64(len(pattern))
}

// sortedHours returns the hour keys of a pattern table in ascending order.
func sortedHours(pattern map[int]float64) []int {
	hours := make([]int, 0, len(pattern))
	for h := range pattern {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}
