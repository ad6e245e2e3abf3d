package model

import "time"

// BusynessLevel is the ordinal classification of a hall's occupancy.
type BusynessLevel string

const (
	LevelLow      BusynessLevel = "low"
	LevelModerate BusynessLevel = "moderate"
	LevelBusy     BusynessLevel = "busy"
	LevelPacked   BusynessLevel = "packed"
)

// LevelForPercentage classifies an occupancy percentage. It is a pure step
// function: <0.3 low, <0.6 moderate, <0.8 busy, else packed.
func LevelForPercentage(p float64) BusynessLevel {
	switch {
	case p < 0.3:
		return LevelLow
	case p < 0.6:
		return LevelModerate
	case p < 0.8:
		return LevelBusy
	default:
		return LevelPacked
	}
}

// OccupancyReading is a point-in-time snapshot of a hall's occupancy.
// Recomputed on every request, never cached beyond the caller's own state.
type OccupancyReading struct {
	Current    int           `json:"current"`
	Capacity   int           `json:"capacity"`
	Percentage float64       `json:"percentage"`
	Level      BusynessLevel `json:"level"`
	Timestamp  time.Time     `json:"timestamp"`
}

// HourlyPrediction forecasts one hour's expected occupancy.
type HourlyPrediction struct {
	Hour      int           `json:"hour"`
	Occupancy int           `json:"occupancy"`
	Level     BusynessLevel `json:"level"`
}

// HistoricalPoint is one sample in a historical trend series. Day carries a
// human-readable label for the daily and weekly views.
type HistoricalPoint struct {
	Hour         int    `json:"hour"`
	AvgOccupancy int    `json:"avgOccupancy"`
	Day          string `json:"day,omitempty"`
}
