package station

import (
	"math"

	"dining-status-backend/internal/menu"
	"dining-status-backend/internal/model"
)

// Rand is the noise source for wait times and stock draws.
type Rand interface {
	Float64() float64
}

// OccupancyProvider yields the live reading station status is derived from.
type OccupancyProvider interface {
	CurrentOccupancy(hall model.Hall) model.OccupancyReading
}

// waitMultiplier scales the base wait time by busyness, monotonically.
func waitMultiplier(level model.BusynessLevel) float64 {
	switch level {
	case model.LevelLow:
		return 0.5
	case model.LevelModerate:
		return 1.0
	case model.LevelBusy:
		return 1.5
	default:
		return 2.0
	}
}

// foodLevelFor maps occupancy percentage to how picked-over a station is.
func foodLevelFor(percentage float64) model.FoodLevel {
	switch {
	case percentage < 0.3:
		return model.FoodFull
	case percentage < 0.7:
		return model.FoodModerate
	default:
		return model.FoodLow
	}
}

// Simulator derives synthetic per-station wait times and stock state from the
// current occupancy and the menu being served. Like the occupancy simulator
// it is deliberately noisy: two calls may disagree.
type Simulator struct {
	occupancy OccupancyProvider
	catalog   *menu.Catalog
	rng       Rand
}

// New creates a station simulator.
func New(occupancy OccupancyProvider, catalog *menu.Catalog, rng Rand) *Simulator {
	return &Simulator{occupancy: occupancy, catalog: catalog, rng: rng}
}

// Statuses computes the live status of every station on the current menu for
// the given hall.
func (s *Simulator) Statuses(hall model.Hall) []model.StationStatus {
	reading := s.occupancy.CurrentOccupancy(hall)
	return StatusesFor(reading, s.catalog.Current().Items, s.rng)
}

// StatusesFor is the pure core: one status per distinct station in the item
// list, in first-appearance order. Out-of-stock draws only happen when the
// hall is busy or packed; each item then has an independent 20% chance.
func StatusesFor(reading model.OccupancyReading, items []model.MenuItem, rng Rand) []model.StationStatus {
	byStation := make(map[string][]model.MenuItem)
	order := []string{}
	for _, item := range items {
		if _, seen := byStation[item.Station]; !seen {
			order = append(order, item.Station)
		}
		byStation[item.Station] = append(byStation[item.Station], item)
	}

	crowded := reading.Level == model.LevelBusy || reading.Level == model.LevelPacked
	statuses := make([]model.StationStatus, 0, len(order))
	for _, name := range order {
		wait := int(math.Round((2 + rng.Float64()*3) * waitMultiplier(reading.Level)))

		outOfStock := []string{}
		if crowded {
			for _, item := range byStation[name] {
				if rng.Float64() < 0.2 {
					outOfStock = append(outOfStock, item.Name)
				}
			}
		}

		statuses = append(statuses, model.StationStatus{
			Station:    name,
			WaitTime:   wait,
			FoodLevel:  foodLevelFor(reading.Percentage),
			OutOfStock: outOfStock,
		})
	}
	return statuses
}
