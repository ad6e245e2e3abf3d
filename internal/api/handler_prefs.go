package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-status-backend/internal/model"
	"dining-status-backend/internal/notify"
)

// GetPreferences handles GET /api/preferences.
func (h *Handler) GetPreferences(c *gin.Context) {
	p, err := h.gate.Preferences(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"enabled":       p.Enabled,
		"selectedHalls": p.SelectedHalls,
		"notifyOnLevel": p.NotifyOnLevel,
		"permission":    h.gate.PermissionStatus(c.Request.Context()),
	})
}

type putPreferencesRequest struct {
	Enabled       bool     `json:"enabled"`
	SelectedHalls []string `json:"selectedHalls"`
	NotifyOnLevel string   `json:"notifyOnLevel" binding:"required,oneof=low moderate"`
}

// PutPreferences handles PUT /api/preferences: the record is replaced
// wholesale and persisted immediately.
func (h *Handler) PutPreferences(c *gin.Context) {
	var req putPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	halls := make([]model.HallID, 0, len(req.SelectedHalls))
	for _, id := range req.SelectedHalls {
		hall, ok := model.HallByID(id)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dining hall: " + id})
			return
		}
		halls = append(halls, hall.ID)
	}

	p := model.NotificationPreferences{
		Enabled:       req.Enabled,
		SelectedHalls: halls,
		NotifyOnLevel: model.BusynessLevel(req.NotifyOnLevel),
	}
	if err := h.gate.UpdatePreferences(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// EnableNotifications handles POST /api/notifications/enable. Enabling only
// sticks when the platform grants permission.
func (h *Handler) EnableNotifications(c *gin.Context) {
	granted, err := h.gate.Enable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"granted":    granted,
		"permission": h.gate.PermissionStatus(c.Request.Context()),
	})
}

// DisableNotifications handles POST /api/notifications/disable.
func (h *Handler) DisableNotifications(c *gin.Context) {
	if err := h.gate.Disable(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// TestNotification handles POST /api/notifications/test: an immediate push
// so the user can confirm the pipeline end to end.
func (h *Handler) TestNotification(c *gin.Context) {
	n := notify.Notification{
		Title: "Test Notification",
		Body:  "If you see this, your notifications are working perfectly!",
	}
	if err := h.platform.Show(c.Request.Context(), n); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}
