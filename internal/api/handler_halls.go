package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dining-status-backend/internal/model"
)

// GetHalls handles GET /api/halls.
func (h *Handler) GetHalls(c *gin.Context) {
	c.JSON(http.StatusOK, model.Halls())
}
