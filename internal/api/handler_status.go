package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-status-backend/internal/insight"
	"dining-status-backend/internal/sim"
)

// GetOccupancy handles GET /api/halls/:hall_id/occupancy.
func (h *Handler) GetOccupancy(c *gin.Context) {
	hall, ok := hallFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.sim.CurrentOccupancy(hall))
}

// GetPredictions handles GET /api/halls/:hall_id/predictions. The forecast
// covers the current hour through 22:00; past that the list is empty.
func (h *Handler) GetPredictions(c *gin.Context) {
	hall, ok := hallFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hall":        hall.ID,
		"predictions": h.sim.TodayPredictions(hall),
	})
}

// GetTrends handles GET /api/halls/:hall_id/trends?view=hourly|daily|weekly.
func (h *Handler) GetTrends(c *gin.Context) {
	hall, ok := hallFromParam(c)
	if !ok {
		return
	}

	view, err := sim.ParseTrendView(c.Query("view"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hall":   hall.ID,
		"view":   view,
		"points": h.sim.HistoricalTrends(view, hall),
	})
}

// GetStations handles GET /api/halls/:hall_id/stations.
func (h *Handler) GetStations(c *gin.Context) {
	hall, ok := hallFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hall":     hall.ID,
		"stations": h.stations.Statuses(hall),
	})
}

// GetInsights handles GET /api/halls/:hall_id/insights.
func (h *Handler) GetInsights(c *gin.Context) {
	hall, ok := hallFromParam(c)
	if !ok {
		return
	}
	now := h.clock.Now()
	c.JSON(http.StatusOK, gin.H{
		"hall":        hall.ID,
		"insights":    insight.Generate(hall, h.stations.Statuses(hall), h.sim.TodayPredictions(hall), now),
		"generatedAt": now,
	})
}
