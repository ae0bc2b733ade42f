package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"coffee-shop-backend/internal/report"
	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles HTTP requests for revenue reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetRevenue handles GET /admin/reports
// @Summary Revenue report
// @Description Paid payments grouped into daily, weekly, monthly, quarterly or yearly buckets
// @Tags reports
// @Produce json
// @Param view query string false "Bucket size (daily, weekly, monthly, quarterly, yearly)" default(monthly)
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param buckets query int false "Keep only the N most recent buckets"
// @Success 200 {object} service.RevenueReportResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/reports [get]
func (h *ReportHandler) GetRevenue(c *gin.Context) {
	req := revenueRequest(c)

	resp, err := h.reportService.Revenue(req)
	if err != nil {
		respondError(c, err, "Failed to build revenue report")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportRevenue handles GET /admin/reports/export
// @Summary Export the revenue report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param view query string false "Bucket size (daily, weekly, monthly, quarterly, yearly)" default(monthly)
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param buckets query int false "Keep only the N most recent buckets"
// @Success 200 {file} file "Spreadsheet"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/reports/export [get]
func (h *ReportHandler) ExportRevenue(c *gin.Context) {
	req := revenueRequest(c)

	// Buffer the workbook so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.reportService.ExportRevenue(req, &buf); err != nil {
		respondError(c, err, "Failed to export revenue report")
		return
	}

	filename := fmt.Sprintf("revenue-%s.xlsx", report.ParseView(req.View))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func revenueRequest(c *gin.Context) *service.RevenueReportRequest {
	return &service.RevenueReportRequest{
		View:    c.Query("view"),
		From:    c.Query("from"),
		To:      c.Query("to"),
		Buckets: queryInt(c, "buckets", 0),
	}
}
