package model

// HallID identifies one of the fixed dining locations.
type HallID string

const (
	HallScott   HallID = "scott"
	HallMorrill HallID = "morrill"
	HallKennedy HallID = "kennedy"
)

// Hall represents a physical dining venue. The set of halls is fixed at
// process start; capacity and modifier never change at runtime.
type Hall struct {
	ID       HallID  `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Modifier float64 `json:"-"` // demand scalar applied to the shared pattern fraction
}

var halls = []Hall{
	{ID: HallScott, Name: "Scott Dining Hall", Capacity: 500, Modifier: 1.0},
	{ID: HallMorrill, Name: "Morrill Dining Hall", Capacity: 450, Modifier: 0.9},
	{ID: HallKennedy, Name: "Kennedy Dining Hall", Capacity: 400, Modifier: 0.85},
}

// Halls returns the fixed list of dining halls.
func Halls() []Hall {
	out := make([]Hall, len(halls))
	copy(out, halls)
	return out
}

// HallByID looks up a hall by its identifier.
func HallByID(id string) (Hall, bool) {
	for _, h := range halls {
		if string(h.ID) == id {
			return h, true
		}
	}
	return Hall{}, false
}
