package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifrizal16/sahasrara/domain"
	"github.com/arifrizal16/sahasrara/internal/mocks"
)

func newReportRouter(reportSvc domain.ReportService) *gin.Engine {
	h := NewReportHandlers(reportSvc)
	r := gin.New()
	r.GET("/api/reports/revenue", h.Revenue)
	r.GET("/api/reports/export", h.Export)
	return r
}

func TestReportHandlers_Revenue(t *testing.T) {
	var gotFilter domain.RevenueFilter
	reportSvc := mocks.NewMockReportService()
	reportSvc.RevenueFunc = func(ctx context.Context, filter domain.RevenueFilter) (*domain.RevenueReport, error) {
		gotFilter = filter
		return &domain.RevenueReport{
			Total:   decimal.NewFromInt(450000),
			Count:   3,
			Average: decimal.NewFromInt(150000),
			ByTreatment: []domain.TreatmentRevenue{
				{Treatment: domain.TreatmentPijatBayi, Label: "Pijat Bayi", Count: 2, Total: decimal.NewFromInt(200000)},
				{Treatment: domain.TreatmentBabySwimming, Label: "Baby Swimming", Count: 1, Total: decimal.NewFromInt(250000)},
			},
		}, nil
	}

	r := newReportRouter(reportSvc)
	w, body := doJSON(t, r, http.MethodGet, "/api/reports/revenue?startDate=2025-06-01&endDate=2025-06-30&tindakan=pijat_bayi", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), gotFilter.Start)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), gotFilter.End)
	assert.Equal(t, "pijat_bayi", gotFilter.Treatment)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(450000), data["totalRevenue"])
	assert.Equal(t, float64(3), data["transactionCount"])
	assert.Equal(t, "150000.00", data["averageRevenue"])

	byTreatment := data["byTreatment"].([]any)
	require.Len(t, byTreatment, 2)
	first := byTreatment[0].(map[string]any)
	assert.Equal(t, "pijat_bayi", first["tindakan"])
	assert.Equal(t, "Pijat Bayi", first["label"])
	assert.Equal(t, float64(2), first["count"])
	assert.Equal(t, float64(200000), first["total"])
}

func TestReportHandlers_Revenue_BadDate(t *testing.T) {
	r := newReportRouter(mocks.NewMockReportService())
	w, body := doJSON(t, r, http.MethodGet, "/api/reports/revenue?startDate=01-06-2025", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tanggal tidak valid", body["error"])
}

func TestReportHandlers_Export(t *testing.T) {
	reportSvc := mocks.NewMockReportService()
	reportSvc.ExportCSVFunc = func(ctx context.Context, filter domain.RevenueFilter, w io.Writer) error {
		_, err := w.Write([]byte("No,Nama Bayi\n1,Dewi\n"))
		return err
	}

	r := newReportRouter(reportSvc)
	w, _ := doJSON(t, r, http.MethodGet, "/api/reports/export", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="baby-spa-transactions-`))
	assert.True(t, strings.HasSuffix(disposition, `.csv"`))

	assert.Contains(t, w.Body.String(), "Dewi")
}
