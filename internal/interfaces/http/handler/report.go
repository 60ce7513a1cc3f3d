package handler

import (
	"fmt"
	"net/http"
	"time"

	ledgerapp "github.com/bizmaster/backend/internal/application/ledger"
	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles summary and export endpoints
type ReportHandler struct {
	BaseHandler
	reportService *ledgerapp.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *ledgerapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// UnitSummary returns one unit's financial snapshot
func (h *ReportHandler) UnitSummary(c *gin.Context) {
	var query UnitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Missing unit parameter")
		return
	}

	summary, err := h.reportService.UnitSummary(query.Unit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SystemSummary returns the cross-unit snapshot
func (h *ReportHandler) SystemSummary(c *gin.Context) {
	h.Success(c, h.reportService.SystemSummary())
}

// TransactionLog returns the audit trail newest first
func (h *ReportHandler) TransactionLog(c *gin.Context) {
	h.Success(c, h.reportService.TransactionLog())
}

// Export streams one dataset as a CSV download
func (h *ReportHandler) Export(c *gin.Context) {
	dataset := c.Param("dataset")

	export, err := h.reportService.ExportCSV(dataset, time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}

// RegisterRoutes registers report and export routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.RequireFeature(identity.FeatureReports))
	{
		reports.GET("/unit", h.UnitSummary)
		reports.GET("/system", h.SystemSummary)
		reports.GET("/transactions", h.TransactionLog)
	}

	export := rg.Group("/export")
	export.Use(middleware.RequireFeature(identity.FeatureDataExport))
	{
		export.GET("/:dataset", h.Export)
	}
}
