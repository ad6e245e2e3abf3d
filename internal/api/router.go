package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"dining-status-backend/config"
	"dining-status-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router. Occupancy-derived
// endpoints are cached for the occupancy TTL (default 30s) and menu-derived
// ones for the menu TTL (default 60s), matching the refresh cadence clients
// poll at.
func NewRouter(h *Handler, srv *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(srv.RateLimitPerSec), srv.RateLimitBurst)

	cacheStore := cache.New(5*time.Minute, 10*time.Minute)
	cacheOccupancy := mw.Cache(cacheStore, srv.OccupancyCacheTTL)
	cacheMenu := mw.Cache(cacheStore, srv.MenuCacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/halls", h.GetHalls)
		api.GET("/halls/:hall_id/occupancy", cacheOccupancy, h.GetOccupancy)
		api.GET("/halls/:hall_id/predictions", cacheOccupancy, h.GetPredictions)
		api.GET("/halls/:hall_id/trends", cacheOccupancy, h.GetTrends)
		api.GET("/halls/:hall_id/stations", cacheOccupancy, h.GetStations)
		api.GET("/halls/:hall_id/insights", cacheOccupancy, h.GetInsights)
		api.GET("/menu", cacheMenu, h.GetMenu)

		api.GET("/preferences", h.GetPreferences)
		api.PUT("/preferences", h.PutPreferences)
		api.POST("/notifications/enable", h.EnableNotifications)
		api.POST("/notifications/disable", h.DisableNotifications)
		api.POST("/notifications/test", h.TestNotification)

		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
