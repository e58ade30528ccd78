package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesboard/internal/repository"
	"salesboard/internal/service"
)

type OverviewHandler struct {
	Overview  *service.OverviewService
	Analysis  *service.AnalysisService
	Snapshots repository.SnapshotRepository
	Logger    *zap.Logger
}

func (h *OverviewHandler) Register(r *gin.Engine, guard gin.HandlerFunc) {
	group := r.Group("/api/sales")
	if guard != nil {
		group.Use(guard)
	}
	group.GET("/overview", h.overview)
	group.GET("/overview/history", h.history)
	group.GET("/analysis", h.analysis)
}

// @Summary Sales overview for a date window
// @Tags sales
// @Param date_range query string false "today|7days|all (default today)"
// @Success 200 {object} apiResponse
// @Router /api/sales/overview [get]
func (h *OverviewHandler) overview(c *gin.Context) {
	if h.Overview == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	dateRange := c.DefaultQuery("date_range", service.RangeToday)
	out, err := h.Overview.Overview(c.Request.Context(), dateRange)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

// @Summary Daily overview snapshots
// @Tags sales
// @Param limit query int false "max snapshots (default 90)"
// @Success 200 {object} apiResponse
// @Router /api/sales/overview/history [get]
func (h *OverviewHandler) history(c *gin.Context) {
	if h.Snapshots == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 90)
	items, err := h.Snapshots.ListOverviewSnapshots(c.Request.Context(), limit)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Margin-based trend analysis
// @Tags sales
// @Param start_date query string true "inclusive start date (YYYY-MM-DD)"
// @Param end_date query string true "inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} apiResponse
// @Router /api/sales/analysis [get]
func (h *OverviewHandler) analysis(c *gin.Context) {
	if h.Analysis == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	start, err := dateQuery(c, "start_date")
	if err != nil {
		Error(c, http.StatusBadRequest, invalidDateMessage, nil)
		return
	}
	end, err := dateQuery(c, "end_date")
	if err != nil {
		Error(c, http.StatusBadRequest, invalidDateMessage, nil)
		return
	}
	out, err := h.Analysis.Analyze(c.Request.Context(), start, end)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	// A range with no activity answers with null data, not an error.
	Ok(c, out, nil)
}
