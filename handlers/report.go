package handlers

import (
	"net/http"
	"time"

	"barberdesk/services/report"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportHandler serves the owner revenue dashboard.
type ReportHandler struct {
	Svc report.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// DailyReportHandler handles GET /api/branches/:branchId/reports/daily?date=.
// Defaults to today when no date is given.
func (h *ReportHandler) DailyReportHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	rpt, err := h.Svc.GetDailyReport(c.Request.Context(), c.Param("branchId"), date)
	if err != nil {
		utils.GetLogger().Error("Failed to build daily report",
			zap.String("branchID", c.Param("branchId")), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rpt)
}

// RangeReportHandler handles GET /api/branches/:branchId/reports/range?from=&to=.
func (h *ReportHandler) RangeReportHandler(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be YYYY-MM-DD"})
			return
		}
	}

	reports, err := h.Svc.GetRange(c.Request.Context(), c.Param("branchId"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}
