package parse

import (
	"fmt"
	"time"
)

// ShortDays holds three-letter weekday labels indexed by time.Weekday.
var ShortDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatHour renders an hour of day as a compact 12-hour label, e.g. 0 ->
// "12am", 13 -> "1pm".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour == 12:
		return "12pm"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// DayLabel renders a short date label like "Mon 3/2".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s %d/%d", ShortDays[int(t.Weekday())], int(t.Month()), t.Day())
}
