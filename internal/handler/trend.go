package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesboard/internal/service"
)

type TrendHandler struct {
	Trends *service.TrendService
	Logger *zap.Logger

	// DefaultWindow applies when the window query parameter is absent.
	DefaultWindow int
}

func (h *TrendHandler) Register(r *gin.Engine) {
	// The trend endpoint ships unauthenticated, matching the dashboard it
	// serves.
	r.GET("/api/sales/trend", h.trend)
}

// @Summary Monthly sales trend with optional smoothing
// @Tags sales
// @Param start_date query string true "inclusive start date (YYYY-MM-DD)"
// @Param end_date query string true "inclusive end date (YYYY-MM-DD)"
// @Param metric query string false "SMA|EMA (default SMA)"
// @Param window query int false "smoothing window/span (default 3)"
// @Success 200 {object} apiResponse
// @Router /api/sales/trend [get]
func (h *TrendHandler) trend(c *gin.Context) {
	if h.Trends == nil {
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
	metric := c.DefaultQuery("metric", service.MetricSMA)
	window := intQuery(c, "window", h.DefaultWindow)

	series, err := h.Trends.Trend(c.Request.Context(), start, end, metric, window)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	Ok(c, series, nil)
}
