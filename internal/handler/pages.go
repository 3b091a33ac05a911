package handler

import (
	"net/http"
	"time"

	"github.com/Aravind-ihub855/Mom-Automation/internal/service"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the HTML pages from the embedded templates.
type PageHandler struct {
	roster *service.RosterService
}

func NewPageHandler(roster *service.RosterService) *PageHandler {
	return &PageHandler{roster: roster}
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// Home renders the submission page with the roster and today's date.
func (h *PageHandler) Home(c *gin.Context) {
	names, err := h.roster.ListNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"TodayDate": todayDate(),
		"Users":     names,
	})
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// TeamMembers renders the roster admin page; /admin lands here too.
func (h *PageHandler) TeamMembers(c *gin.Context) {
	c.HTML(http.StatusOK, "team_members.html", gin.H{"TodayDate": todayDate()})
}

func (h *PageHandler) Reports(c *gin.Context) {
	c.HTML(http.StatusOK, "reports.html", gin.H{"TodayDate": todayDate()})
}
