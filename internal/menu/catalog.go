package menu

import (
	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/model"
)

// Static menu catalog, one item list per meal period. Stations are the
// free-text grouping keys the station simulator keys off.
var breakfastItems = []model.MenuItem{
	{Name: "Scrambled Eggs", Station: "Grill", Category: "entree", Dietary: []string{"V", "GF"}},
	{Name: "Buttermilk Pancakes", Station: "Grill", Category: "entree", Dietary: []string{"V"}},
	{Name: "Turkey Sausage Links", Station: "Grill", Category: "side"},
	{Name: "Steel-Cut Oatmeal", Station: "Home Zone", Category: "entree", Dietary: []string{"V", "VG"}},
	{Name: "Hash Browns", Station: "Home Zone", Category: "side", Dietary: []string{"V", "VG", "GF"}},
	{Name: "Fresh Fruit Cup", Station: "Salad Bar", Category: "side", Dietary: []string{"V", "VG", "GF"}},
	{Name: "Greek Yogurt Parfait", Station: "Salad Bar", Category: "side", Dietary: []string{"V", "GF"}},
	{Name: "Blueberry Muffin", Station: "Bakery", Category: "dessert", Dietary: []string{"V"}},
	{Name: "Drip Coffee", Station: "Beverages", Category: "drink", Dietary: []string{"V", "VG", "GF"}},
	{Name: "Orange Juice", Station: "Beverages", Category: "drink", Dietary: []string{"V", "VG", "GF"}},
}

var lunchItems = []model.MenuItem{
	{Name: "Grilled Chicken Sandwich", Station: "Grill", Category: "entree"},
	{Name: "Black Bean Burger", Station: "Grill", Category: "entree", Dietary: []string{"V", "VG"}},
	{Name: "French Fries", Station: "Grill", Category: "side", Dietary: []string{"V", "VG"}},
	{Name: "Pepperoni Pizza", Station: "Pizza", Category: "entree"},
	{Name: "Margherita Pizza", Station: "Pizza", Category: "entree", Dietary: []string{"V"}},
	{Name: "Chicken Caesar Salad", Station: "Salad Bar", Category: "salad"},
	{Name: "Garden Salad", Station: "Salad Bar", Category: "salad", Dietary: []string{"V", "VG", "GF"}},
	{Name: "Turkey Club Wrap", Station: "Deli", Category: "entree"},
	{Name: "Tomato Basil Soup", Station: "Home Zone", Category: "side", Dietary: []string{"V", "GF"}},
	{Name: "Chocolate Chip Cookie", Station: "Bakery", Category: "dessert", Dietary: []string{"V"}},
	{Name: "Fountain Soda", Station: "Beverages", Category: "drink", Dietary: []string{"V", "VG", "GF"}},
}

var dinnerItems = []model.MenuItem{
	{Name: "Herb Roasted Chicken", Station: "Home Zone", Category: "entree", Dietary: []string{"GF"}},
	{Name: "Garlic Mashed Potatoes", Station: "Home Zone", Category: "side", Dietary: []string{"V", "GF"}},
	{Name: "Steamed Broccoli", Station: "Home Zone", Category: "side", Dietary: []string{"V", "VG", "GF"}},
	{Name: "Beef Stir Fry", Station: "International", Category: "entree"},
	{Name: "Vegetable Lo Mein", Station: "International", Category: "entree", Dietary: []string{"V", "VG"}},
	{Name: "Cheeseburger", Station: "Grill", Category: "entree"},
	{Name: "Veggie Supreme Pizza", Station: "Pizza", Category: "entree", Dietary: []string{"V"}},
	{Name: "Spinach Salad", Station: "Salad Bar", Category: "salad", Dietary: []string{"V", "VG", "GF"}},
	{Name: "Apple Pie", Station: "Bakery", Category: "dessert", Dietary: []string{"V"}},
	{Name: "Iced Tea", Station: "Beverages", Category: "drink", Dietary: []string{"V", "VG", "GF"}},
}

var lateNightItems = []model.MenuItem{
	{Name: "Quesadilla", Station: "Grill", Category: "entree", Dietary: []string{"V"}},
	{Name: "Mozzarella Sticks", Station: "Grill", Category: "side", Dietary: []string{"V"}},
	{Name: "Cheese Pizza", Station: "Pizza", Category: "entree", Dietary: []string{"V"}},
	{Name: "Loaded Nachos", Station: "Grill", Category: "side", Dietary: []string{"V"}},
	{Name: "Brownie", Station: "Bakery", Category: "dessert", Dietary: []string{"V"}},
	{Name: "Hot Chocolate", Station: "Beverages", Category: "drink", Dietary: []string{"V", "GF"}},
}

// MealPeriodFor classifies an hour of day into a serving window: [7,11)
// breakfast, [11,16) lunch, [16,22) dinner, anything else late-night (the
// late-night window wraps across midnight).
func MealPeriodFor(hour int) model.MealPeriod {
	switch {
	case hour >= 7 && hour < 11:
		return model.MealBreakfast
	case hour >= 11 && hour < 16:
		return model.MealLunch
	case hour >= 16 && hour < 22:
		return model.MealDinner
	default:
		return model.MealLateNight
	}
}

// Catalog serves the static menu lists keyed by the current time.
type Catalog struct {
	clock clock.Clock
}

// NewCatalog creates a catalog on the given clock.
func NewCatalog(c clock.Clock) *Catalog {
	return &Catalog{clock: c}
}

// Items returns the static item list for a meal period.
func (c *Catalog) Items(meal model.MealPeriod) []model.MenuItem {
	var items []model.MenuItem
	switch meal {
	case model.MealBreakfast:
		items = breakfastItems
	case model.MealLunch:
		items = lunchItems
	case model.MealDinner:
		items = dinnerItems
	default:
		items = lateNightItems
	}
	out := make([]model.MenuItem, len(items))
	copy(out, items)
	return out
}

// Current returns the menu being served right now. Pure function of the
// clock; no randomness.
func (c *Catalog) Current() model.Menu {
	now := c.clock.Now()
	meal := MealPeriodFor(now.Hour())
	return model.Menu{
		Meal:      meal,
		Items:     c.Items(meal),
		Timestamp: now,
	}
}
