package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"salesboard/internal/models"
	"salesboard/internal/repository"
	"salesboard/internal/service"
)

type ReportHandler struct {
	Reports *service.ReportService
	Repo    repository.ReportRepository
	Logger  *zap.Logger
}

// Register wires the report routes. exportGuard gates the CSV export
// (Employee level in the original deployment), crudGuard the record CRUD
// (Manager level).
func (h *ReportHandler) Register(r *gin.Engine, exportGuard, crudGuard gin.HandlerFunc) {
	export := r.Group("/api/reports")
	if exportGuard != nil {
		export.Use(exportGuard)
	}
	export.GET("/export", h.export)

	crud := r.Group("/api/reports")
	if crudGuard != nil {
		crud.Use(crudGuard)
	}
	crud.POST("", h.create)
	crud.GET("", h.list)
	crud.DELETE("/:report_id", h.delete)
}

// @Summary Generate a sales performance report as CSV
// @Tags reports
// @Param fromDate query string false "inclusive start date (YYYY-MM-DD)"
// @Param toDate query string false "inclusive end date (YYYY-MM-DD)"
// @Param reportType query string false "sales-summary|product-analysis"
// @Produce text/csv
// @Success 200
// @Router /api/reports/export [get]
func (h *ReportHandler) export(c *gin.Context) {
	if h.Reports == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	from, err := dateQueryPtr(c, "fromDate")
	if err != nil {
		Error(c, http.StatusBadRequest, invalidDateMessage, nil)
		return
	}
	to, err := dateQueryPtr(c, "toDate")
	if err != nil {
		Error(c, http.StatusBadRequest, invalidDateMessage, nil)
		return
	}
	reportType := strings.TrimSpace(c.Query("reportType"))

	rows, err := h.Reports.Generate(c.Request.Context(), reportType, from, to)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	// An unrecognized reportType still gets the attachment headers and an
	// empty body; consumers treat that as "nothing to report".
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportType+"_report.csv"))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			if h.Logger != nil {
				h.Logger.Warn("csv write failed", zap.Error(err))
			}
			return
		}
	}
	w.Flush()
}

type createReportRequest struct {
	Title      string         `json:"title" binding:"required"`
	ReportType string         `json:"report_type" binding:"required"`
	Params     map[string]any `json:"params"`
}

// @Summary Create a report record
// @Tags reports
// @Accept json
// @Success 200 {object} apiResponse
// @Router /api/reports [post]
func (h *ReportHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := &models.Report{
		Title:      strings.TrimSpace(req.Title),
		ReportType: strings.TrimSpace(req.ReportType),
	}
	if req.Params != nil {
		raw, err := json.Marshal(req.Params)
		if err != nil {
			Error(c, http.StatusBadRequest, "invalid params", nil)
			return
		}
		item.Params = datatypes.JSON(raw)
	}
	if err := h.Repo.CreateReport(c.Request.Context(), item); err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary List report records
// @Tags reports
// @Success 200 {object} apiResponse
// @Router /api/reports [get]
func (h *ReportHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListReports(c.Request.Context())
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Delete a report record
// @Tags reports
// @Param report_id path int true "report id"
// @Success 200 {object} apiResponse
// @Router /api/reports/{report_id} [delete]
func (h *ReportHandler) delete(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "report_id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid report_id", nil)
		return
	}
	affected, err := h.Repo.DeleteReportByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if affected == 0 {
		Error(c, http.StatusNotFound, "report not found", nil)
		return
	}
	Ok(c, nil, nil)
}
