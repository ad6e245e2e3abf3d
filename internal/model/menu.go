package model

import "time"

// MealPeriod is the serving window a menu belongs to.
type MealPeriod string

const (
	MealBreakfast MealPeriod = "breakfast"
	MealLunch     MealPeriod = "lunch"
	MealDinner    MealPeriod = "dinner"
	MealLateNight MealPeriod = "late-night"
)

// MenuItem is a single dish on the current menu. Station is a free-text
// grouping key; Dietary holds tags like V, VG, GF.
type MenuItem struct {
	Name     string   `json:"name"`
	Station  string   `json:"station"`
	Category string   `json:"category"` // entree, side, dessert, drink, salad
	Dietary  []string `json:"dietary,omitempty"`
}

// Menu is the item list served during the current meal period.
type Menu struct {
	Meal      MealPeriod `json:"meal"`
	Items     []MenuItem `json:"items"`
	Timestamp time.Time  `json:"timestamp"`
}

// FoodLevel describes how well stocked a station is.
type FoodLevel string

const (
	FoodFull     FoodLevel = "full"
	FoodModerate FoodLevel = "moderate"
	FoodLow      FoodLevel = "low"
)

// StationStatus is the simulated live state of one menu station.
// Recomputed per request, never persisted.
type StationStatus struct {
	Station    string    `json:"station"`
	WaitTime   int       `json:"waitTime"` // minutes
	FoodLevel  FoodLevel `json:"foodLevel"`
	OutOfStock []string  `json:"outOfStock"`
}
