package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Aravind-ihub855/Mom-Automation/internal/logger"
	"github.com/Aravind-ihub855/Mom-Automation/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	export *service.ExportService
}

func NewExportHandler(export *service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// Download handles GET /download_report/:date, streaming the consolidated
// workbook as an attachment.
func (h *ExportHandler) Download(c *gin.Context) {
	date := c.Param("date")
	data, filename, err := h.export.Build(c.Request.Context(), date)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No reports found for this date"})
		return
	case err != nil:
		logger.Error("export failed", "date", date, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
