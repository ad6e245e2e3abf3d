package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/model"
	"dining-status-backend/internal/parse"
)

// Rand is the random source the simulator draws noise from. *rand.Rand
// satisfies it; tests substitute a fixed sequence.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded Rand that is safe for concurrent use.
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// TrendView selects a historical aggregation.
type TrendView string

const (
	TrendHourly TrendView = "hourly"
	TrendDaily  TrendView = "daily"
	TrendWeekly TrendView = "weekly"
)

// ParseTrendView validates a raw view parameter. An empty string defaults to
// the hourly view.
func ParseTrendView(raw string) (TrendView, error) {
	switch TrendView(raw) {
	case "", TrendHourly:
		return TrendHourly, nil
	case TrendDaily:
		return TrendDaily, nil
	case TrendWeekly:
		return TrendWeekly, nil
	default:
		return "", fmt.Errorf("unknown trend view %q", raw)
	}
}

// Simulator derives occupancy readings, forecasts, and trend series from the
// demand patterns, the wall clock, and a noise source. It holds no mutable
// state of its own; every call is an independent snapshot.
type Simulator struct {
	clock clock.Clock
	rng   Rand
}

// New creates a simulator on the given clock and random source.
func New(c clock.Clock, rng Rand) *Simulator {
	return &Simulator{clock: c, rng: rng}
}

// CurrentOccupancy computes a live reading for the hall. The result carries
// deliberate noise: a smooth intra-hour swing plus a uniform perturbation in
// [-0.1, +0.1] that models sensor jitter, so two calls in the same minute may
// differ. The count is always clamped to [0, capacity].
func (s *Simulator) CurrentOccupancy(hall model.Hall) model.OccupancyReading {
	now := s.clock.Now()
	pattern := patternFor(now)

	fraction := fractionAt(pattern, now.Hour()) * hall.Modifier

	minuteVariation := math.Sin(float64(now.Minute())/60*math.Pi) * 0.15
	randomVariation := (s.rng.Float64() - 0.5) * 0.2

	current := int(math.Round(float64(hall.Capacity) * fraction * (1 + minuteVariation + randomVariation)))
	if current < 0 {
		current = 0
	}
	if current > hall.Capacity {
		current = hall.Capacity
	}

	percentage := float64(current) / float64(hall.Capacity)
	return model.OccupancyReading{
		Current:    current,
		Capacity:   hall.Capacity,
		Percentage: percentage,
		Level:      model.LevelForPercentage(percentage),
		Timestamp:  now,
	}
}

// TodayPredictions forecasts the remaining hours of the day, from the current
// hour through 22:00 inclusive. Predictions are pure pattern lookups with no
// jitter. Past 22:00 the slice is empty.
func (s *Simulator) TodayPredictions(hall model.Hall) []model.HourlyPrediction {
	now := s.clock.Now()
	pattern := patternFor(now)

	predictions := []model.HourlyPrediction{}
	for hour := now.Hour(); hour <= 22; hour++ {
		occupancy := int(math.Round(fractionAt(pattern, hour) * float64(hall.Capacity) * hall.Modifier))
		predictions = append(predictions, model.HourlyPrediction{
			Hour:      hour,
			Occupancy: occupancy,
			Level:     model.LevelForPercentage(float64(occupancy) / float64(hall.Capacity)),
		})
	}
	return predictions
}

// HistoricalTrends produces the requested aggregate series for a hall.
//
// The hourly view always averages over the weekday pattern regardless of the
// current day; it models an aggregate-over-weekdays chart. The daily view
// averages each day type's own table. The weekly view covers the last seven
// calendar days ending today, scaled by a random factor in [0.9, 1.1].
func (s *Simulator) HistoricalTrends(view TrendView, hall model.Hall) []model.HistoricalPoint {
	switch view {
	case TrendDaily:
		return s.dailyTrends(hall)
	case TrendWeekly:
		return s.weeklyTrends(hall)
	default:
		return s.hourlyTrends(hall)
	}
}

func (s *Simulator) hourlyTrends(hall model.Hall) []model.HistoricalPoint {
	points := []model.HistoricalPoint{}
	for _, hour := range sortedHours(weekdayPattern) {
		points = append(points, model.HistoricalPoint{
			Hour:         hour,
			AvgOccupancy: int(math.Round(weekdayPattern[hour] * float64(hall.Capacity) * hall.Modifier)),
		})
	}
	return points
}

func (s *Simulator) dailyTrends(hall model.Hall) []model.HistoricalPoint {
	points := []model.HistoricalPoint{}
	for i, day := range parse.ShortDays {
		pattern := weekdayPattern
		if i == 0 || i == 6 {
			pattern = weekendPattern
		}
		points = append(points, model.HistoricalPoint{
			Hour:         i,
			Day:          day,
			AvgOccupancy: int(math.Round(averageFraction(pattern) * float64(hall.Capacity) * hall.Modifier)),
		})
	}
	return points
}

func (s *Simulator) weeklyTrends(hall model.Hall) []model.HistoricalPoint {
	now := s.clock.Now()
	points := []model.HistoricalPoint{}
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -(6 - i))
		pattern := patternFor(date)
		scale := 0.9 + s.rng.Float64()*0.2
		points = append(points, model.HistoricalPoint{
			Hour:         i,
			Day:          parse.DayLabel(date),
			AvgOccupancy: int(math.Round(averageFraction(pattern) * float64(hall.Capacity) * hall.Modifier * scale)),
		})
	}
	return points
}
