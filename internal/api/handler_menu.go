package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMenu handles GET /api/menu.
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Current())
}
