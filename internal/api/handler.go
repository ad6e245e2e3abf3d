package api

import (
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dining-status-backend/internal/clock"
	"dining-status-backend/internal/menu"
	"dining-status-backend/internal/model"
	"dining-status-backend/internal/notify"
	"dining-status-backend/internal/sim"
	"dining-status-backend/internal/station"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	sim      *sim.Simulator
	stations *station.Simulator
	catalog  *menu.Catalog
	gate     *notify.Gate
	platform notify.Platform
	clock    clock.Clock
	db       *gorm.DB
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(
	simulator *sim.Simulator,
	stations *station.Simulator,
	catalog *menu.Catalog,
	gate *notify.Gate,
	platform notify.Platform,
	c clock.Clock,
	db *gorm.DB,
	webpushOptions *webpush.Options,
) *Handler {
	return &Handler{
		sim:      simulator,
		stations: stations,
		catalog:  catalog,
		gate:     gate,
		platform: platform,
		clock:    c,
		db:       db,
		webpush:  webpushOptions,
	}
}

// hallFromParam resolves the :hall_id path parameter, replying 404 for
// unknown halls.
func hallFromParam(c *gin.Context) (model.Hall, bool) {
	hall, ok := model.HallByID(c.Param("hall_id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown dining hall"})
		return model.Hall{}, false
	}
	return hall, true
}
