package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifrizal16/sahasrara/domain"
)

// ReportHandlers handles revenue reporting and CSV export
type ReportHandlers struct {
	reportSvc domain.ReportService
}

// NewReportHandlers creates new report handlers
func NewReportHandlers(reportSvc domain.ReportService) *ReportHandlers {
	return &ReportHandlers{reportSvc: reportSvc}
}

func parseRevenueFilter(c *gin.Context) (domain.RevenueFilter, error) {
	var filter domain.RevenueFilter
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, domain.ErrInvalidDate
		}
		filter.Start = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, domain.ErrInvalidDate
		}
		filter.End = t
	}
	filter.Treatment = c.Query("tindakan")
	return filter, nil
}

// Revenue handles GET /api/reports/revenue
func (h *ReportHandlers) Revenue(c *gin.Context) {
	filter, err := parseRevenueFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tanggal tidak valid"})
		return
	}

	report, err := h.reportSvc.Revenue(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	byTreatment := make([]gin.H, 0, len(report.ByTreatment))
	for _, t := range report.ByTreatment {
		byTreatment = append(byTreatment, gin.H{
			"tindakan": string(t.Treatment),
			"label":    t.Label,
			"count":    t.Count,
			"total":    t.Total.IntPart(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalRevenue":     report.Total.IntPart(),
			"transactionCount": report.Count,
			"averageRevenue":   report.Average.StringFixed(2),
			"byTreatment":      byTreatment,
		},
	})
}

// Export handles GET /api/reports/export
func (h *ReportHandlers) Export(c *gin.Context) {
	filter, err := parseRevenueFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tanggal tidak valid"})
		return
	}

	filename := fmt.Sprintf("baby-spa-transactions-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reportSvc.ExportCSV(c.Request.Context(), filter, c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
}
