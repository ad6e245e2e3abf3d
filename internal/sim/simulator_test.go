package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/model"
)

// fixedRand always returns the same draw; 0.5 cancels the noise term.
type fixedRand struct {
	v float64
}

func (f fixedRand) Float64() float64 { return f.v }

func mustHall(t *testing.T, id string) model.Hall {
	t.Helper()
	hall, ok := model.HallByID(id)
	require.True(t, ok)
	return hall
}

func TestCurrentOccupancyMatchesPattern(t *testing.T) {
	// Wednesday noon, on the hour, zero noise: pure pattern lookup.
	noon := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	s := New(clock.Fixed(noon), fixedRand{0.5})

	scott := mustHall(t, "scott")
	reading := s.CurrentOccupancy(scott)
	assert.Equal(t, 325, reading.Current) // 500 * 0.65
	assert.Equal(t, 500, reading.Capacity)
	assert.Equal(t, model.LevelBusy, reading.Level)
	assert.Equal(t, noon, reading.Timestamp)

	// The hall modifier scales demand down.
	kennedy := mustHall(t, "kennedy")
	reading = s.CurrentOccupancy(kennedy)
	assert.Equal(t, 221, reading.Current) // round(400 * 0.65 * 0.85)
	assert.Equal(t, model.LevelModerate, reading.Level)
}

func TestCurrentOccupancyIntraHourSwing(t *testing.T) {
	scott := mustHall(t, "scott")

	onHour := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)
	midHour := time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC)

	start := New(clock.Fixed(onHour), fixedRand{0.5}).CurrentOccupancy(scott)
	peak := New(clock.Fixed(midHour), fixedRand{0.5}).CurrentOccupancy(scott)

	// sin peaks mid-hour, so the 18:30 reading must exceed the 18:00 one.
	assert.Greater(t, peak.Current, start.Current)
}

func TestCurrentOccupancyClampedForAllDraws(t *testing.T) {
	rng := NewRand(1)
	for _, hall := range model.Halls() {
		for hour := 0; hour < 24; hour++ {
			at := time.Date(2026, 3, 4, hour, 30, 0, 0, time.UTC)
			s := New(clock.Fixed(at), rng)
			for i := 0; i < 10000; i++ {
				reading := s.CurrentOccupancy(hall)
				require.GreaterOrEqual(t, reading.Current, 0, "hall %s hour %d", hall.ID, hour)
				require.LessOrEqual(t, reading.Current, hall.Capacity, "hall %s hour %d", hall.ID, hour)
			}
		}
	}
}

func TestTodayPredictions(t *testing.T) {
	scott := mustHall(t, "scott")

	t.Run("covers current hour through 22", func(t *testing.T) {
		at := time.Date(2026, 3, 4, 14, 45, 0, 0, time.UTC)
		predictions := New(clock.Fixed(at), fixedRand{0.5}).TodayPredictions(scott)

		require.Len(t, predictions, 9) // hours 14..22
		assert.Equal(t, 14, predictions[0].Hour)
		assert.Equal(t, 22, predictions[len(predictions)-1].Hour)
		for i := 1; i < len(predictions); i++ {
			assert.Equal(t, predictions[i-1].Hour+1, predictions[i].Hour)
		}
		// No jitter: exact pattern values.
		assert.Equal(t, 150, predictions[0].Occupancy) // 500 * 0.30
		assert.Equal(t, model.LevelModerate, predictions[0].Level)
		assert.Equal(t, model.LevelLow, predictions[1].Level) // 15:00 is 0.15
	})

	t.Run("empty after 22:00", func(t *testing.T) {
		at := time.Date(2026, 3, 4, 23, 5, 0, 0, time.UTC)
		predictions := New(clock.Fixed(at), fixedRand{0.5}).TodayPredictions(scott)
		assert.Empty(t, predictions)
	})

	t.Run("weekend uses weekend pattern", func(t *testing.T) {
		at := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC) // Saturday
		predictions := New(clock.Fixed(at), fixedRand{0.5}).TodayPredictions(scott)
		require.NotEmpty(t, predictions)
		assert.Equal(t, 275, predictions[0].Occupancy) // 500 * 0.55
	})
}

func TestParseTrendView(t *testing.T) {
	view, err := ParseTrendView("")
	assert.NoError(t, err)
	assert.Equal(t, TrendHourly, view)

	view, err = ParseTrendView("weekly")
	assert.NoError(t, err)
	assert.Equal(t, TrendWeekly, view)

	_, err = ParseTrendView("monthly")
	assert.Error(t, err)
}

func TestHistoricalTrendsHourly(t *testing.T) {
	scott := mustHall(t, "scott")
	// A Saturday clock: the hourly view still aggregates the weekday table.
	at := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	points := New(clock.Fixed(at), fixedRand{0.5}).HistoricalTrends(TrendHourly, scott)

	require.Len(t, points, len(weekdayPattern))
	assert.Equal(t, 7, points[0].Hour)
	assert.Equal(t, 75, points[0].AvgOccupancy) // 500 * 0.15
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Hour, points[i-1].Hour)
	}
}

func TestHistoricalTrendsDaily(t *testing.T) {
	scott := mustHall(t, "scott")
	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	points := New(clock.Fixed(at), fixedRand{0.5}).HistoricalTrends(TrendDaily, scott)

	require.Len(t, points, 7)
	assert.Equal(t, "Sun", points[0].Day)
	assert.Equal(t, "Sat", points[6].Day)

	// Sunday and Saturday average the weekend table, the rest the weekday one.
	weekendAvg := int(0.5 + averageFraction(weekendPattern)*500)
	weekdayAvg := int(0.5 + averageFraction(weekdayPattern)*500)
	assert.Equal(t, weekendAvg, points[0].AvgOccupancy)
	assert.Equal(t, weekdayAvg, points[3].AvgOccupancy)
}

func TestHistoricalTrendsWeekly(t *testing.T) {
	scott := mustHall(t, "scott")
	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	// Draw 0.5 pins the random scale factor at exactly 1.0.
	points := New(clock.Fixed(at), fixedRand{0.5}).HistoricalTrends(TrendWeekly, scott)

	require.Len(t, points, 7)
	assert.Equal(t, "Thu 2/26", points[0].Day)
	assert.Equal(t, "Wed 3/4", points[6].Day)

	weekdayAvg := int(0.5 + averageFraction(weekdayPattern)*500)
	assert.Equal(t, weekdayAvg, points[6].AvgOccupancy)
}

func TestWeeklyScaleStaysInBounds(t *testing.T) {
	scott := mustHall(t, "scott")
	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	s := New(clock.Fixed(at), NewRand(7))

	weekdayAvg := averageFraction(weekdayPattern) * 500
	weekendAvg := averageFraction(weekendPattern) * 500
	for i := 0; i < 1000; i++ {
		for _, p := range s.HistoricalTrends(TrendWeekly, scott) {
			upper := weekdayAvg
			if weekendAvg > upper {
				upper = weekendAvg
			}
			lower := weekdayAvg
			if weekendAvg < lower {
				lower = weekendAvg
			}
			assert.GreaterOrEqual(t, float64(p.AvgOccupancy), lower*0.9-1)
			assert.LessOrEqual(t, float64(p.AvgOccupancy), upper*1.1+1)
		}
	}
}
