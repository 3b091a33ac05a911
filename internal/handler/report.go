package handler

import (
	"errors"
	"net/http"

	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/model"
	"github.com/Aravind-ihub855/Mom-Automation/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Check handles GET /check_report/:date/:name. Open to unauthenticated
// callers so a member can see whether they already filed today.
func (h *ReportHandler) Check(c *gin.Context) {
	report, err := h.reports.Lookup(c.Request.Context(), c.Param("date"), c.Param("name"))
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusOK, model.CheckReportResponse{Exists: false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.CheckReportResponse{
		Exists: true,
		Report: &model.ReportBody{
			ID:        report.ID,
			Yesterday: report.Yesterday,
			Today:     report.Today,
			Blockers:  report.Blockers,
		},
	})
}

// Save handles POST /save_report. Submission is deliberately open; the only
// gates are validation and the per-(date,name) uniqueness rule.
func (h *ReportHandler) Save(c *gin.Context) {
	var req model.ReportForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.reports.Submit(c.Request.Context(), req.Date, req.Name, req.Yesterday, req.Today, req.Blockers)
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		logger.Error("save report failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save report"})
		return
	}
	logger.Info("report.saved", "date", req.Date, "name", req.Name)
	c.JSON(http.StatusOK, gin.H{"message": "Report saved successfully"})
}

// ListByDate handles GET /reports/:date for admins.
func (h *ReportHandler) ListByDate(c *gin.Context) {
	rows, err := h.reports.Rows(c.Request.Context(), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []model.ReportRow{}
	}
	c.JSON(http.StatusOK, rows)
}
