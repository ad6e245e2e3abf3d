// Package insight composes human-readable tips from the live simulation
// output. Stateless; every call recomputes from scratch.
package insight

import (
	"fmt"
	"math"
	"strings"
	"time"

	"dining-status-backend/internal/model"
	"dining-status-backend/internal/parse"
	"dining-status-backend/internal/sim"
)

// maxOutOfStockNames caps how many unavailable items are named before the
// list is truncated.
const maxOutOfStockNames = 3

// Generate builds the ordered insight strings for a hall from its current
// station statuses, the remaining forecast, and the day type.
func Generate(hall model.Hall, statuses []model.StationStatus, predictions []model.HourlyPrediction, now time.Time) []string {
	insights := []string{}

	if len(statuses) > 0 {
		var total int
		fastest, slowest := statuses[0], statuses[0]
		for _, st := range statuses {
			total += st.WaitTime
			if st.WaitTime < fastest.WaitTime {
				fastest = st
			}
			if st.WaitTime > slowest.WaitTime {
				slowest = st
			}
		}
		avg := int(math.Round(float64(total) / float64(len(statuses))))
		insights = append(insights, fmt.Sprintf("Average wait at %s is about %d min across %d stations", hall.Name, avg, len(statuses)))

		if slowest.WaitTime-fastest.WaitTime > 3 {
			insights = append(insights, fmt.Sprintf("Shortest line: %s (~%d min). Longest: %s (~%d min)",
				fastest.Station, fastest.WaitTime, slowest.Station, slowest.WaitTime))
		}
	}

	if low := lowStations(statuses); len(low) > 0 {
		insights = append(insights, fmt.Sprintf("Running low on food: %s", strings.Join(low, ", ")))
	}

	insights = append(insights, stockInsight(statuses))

	if hour, ok := quietestHour(predictions); ok {
		insights = append(insights, fmt.Sprintf("Least busy later today: around %s", parse.FormatHour(hour)))
	}

	insights = append(insights, dayTips(now)...)
	return insights
}

// quietestHour picks the upcoming forecast hour with the lowest expected
// occupancy, earliest on ties. The first entry is the current hour and is
// skipped; there is no point recommending now.
func quietestHour(predictions []model.HourlyPrediction) (int, bool) {
	if len(predictions) < 2 {
		return 0, false
	}
	best := predictions[1]
	for _, p := range predictions[2:] {
		if p.Occupancy < best.Occupancy {
			best = p
		}
	}
	return best.Hour, true
}

func lowStations(statuses []model.StationStatus) []string {
	names := []string{}
	for _, st := range statuses {
		if st.FoodLevel == model.FoodLow {
			names = append(names, st.Station)
		}
	}
	return names
}

func stockInsight(statuses []model.StationStatus) string {
	unavailable := []string{}
	for _, st := range statuses {
		unavailable = append(unavailable, st.OutOfStock...)
	}
	if len(unavailable) == 0 {
		return "Everything on the menu is in stock right now"
	}

	named := unavailable
	if len(named) > maxOutOfStockNames {
		named = named[:maxOutOfStockNames]
	}
	out := fmt.Sprintf("Out of stock: %s", strings.Join(named, ", "))
	if extra := len(unavailable) - len(named); extra > 0 {
		out += fmt.Sprintf(" (+%d more)", extra)
	}
	return out
}

// dayTips returns the two fixed tips for the current day type.
func dayTips(now time.Time) []string {
	if sim.IsWeekend(now) {
		return []string{
			"Weekend brunch hits its peak from 11am to 1pm",
			"Quietest times: before 9am and after 8pm",
		}
	}
	return []string{
		"Weekday rush peaks 12-1pm for lunch and 6-7pm for dinner",
		"Early birds (7-9am) avoid the crowds",
	}
}
