package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForPercentage(t *testing.T) {
	cases := []struct {
		percentage float64
		expected   BusynessLevel
	}{
		{0.0, LevelLow},
		{0.29, LevelLow},
		{0.3, LevelModerate},
		{0.59, LevelModerate},
		{0.6, LevelBusy},
		{0.79, LevelBusy},
		{0.8, LevelPacked},
		{1.0, LevelPacked},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, LevelForPercentage(tc.percentage), "percentage %.2f", tc.percentage)
	}
}

func TestHallByID(t *testing.T) {
	hall, ok := HallByID("scott")
	assert.True(t, ok)
	assert.Equal(t, "Scott Dining Hall", hall.Name)
	assert.Equal(t, 500, hall.Capacity)

	_, ok = HallByID("nowhere")
	assert.False(t, ok)
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.False(t, p.Enabled)
	assert.Empty(t, p.SelectedHalls)
	assert.Equal(t, LevelModerate, p.NotifyOnLevel)
}
