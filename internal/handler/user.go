package handler

import (
	"errors"
	"net/http"

	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"
	"github.com/Aravind-ihub855/Mom-Automation/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	roster *service.RosterService
}

func NewUserHandler(roster *service.RosterService) *UserHandler {
	return &UserHandler{roster: roster}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	names, err := h.roster.ListNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// Add handles POST /add_user.
func (h *UserHandler) Add(c *gin.Context) {
	var req model.MemberForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := h.roster.Add(c.Request.Context(), req.Name)
	switch {
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("user.added", "name", req.Name)
	c.JSON(http.StatusOK, gin.H{"message": "User added successfully"})
}

// Delete handles POST /delete_user, cascading to the member's reports.
func (h *UserHandler) Delete(c *gin.Context) {
	var req model.MemberForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err := h.roster.Delete(c.Request.Context(), req.Name)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("user.deleted", "name", req.Name)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
