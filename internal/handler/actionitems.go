package handler

import (
	"errors"
	"net/http"

	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"
	"github.com/Aravind-ihub855/Mom-Automation/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionItemHandler struct {
	items *service.ActionItemService
}

func NewActionItemHandler(items *service.ActionItemService) *ActionItemHandler {
	return &ActionItemHandler{items: items}
}

// Generate handles GET /generate_action_items/:date. Idempotent: a cached
// date returns immediately without touching the model again.
func (h *ActionItemHandler) Generate(c *gin.Context) {
	date := c.Param("date")
	text, err := h.items.Generate(c.Request.Context(), date)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No reports found for this date"})
		return
	case errors.Is(err, service.ErrGeneration):
		logger.Error("action item generation failed", "date", date, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate action items"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.ActionItemsResponse{ActionItems: text})
}

// Cached handles GET /action_items/:date, returning empty text when nothing
// has been generated.
func (h *ActionItemHandler) Cached(c *gin.Context) {
	text, err := h.items.Cached(c.Request.Context(), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.ActionItemsResponse{ActionItems: text})
}
