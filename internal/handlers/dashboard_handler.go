package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/services"
)

// DashboardHandler handles the derived dashboard views
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SeriesQuery holds the optional date range for the transaction series.
// Both bounds must be given together: a lone bound is rejected, and with
// neither the default 8-day window ending today applies.
type SeriesQuery struct {
	From string `form:"from" binding:"omitempty,iso_date"`
	To   string `form:"to" binding:"omitempty,iso_date"`
}

// Today returns the current day's metrics
// @Summary     Today's metrics
// @Description Get today's transaction count and revenue
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} reports.TodayMetrics "Today's metrics"
// @Router      /dashboard/today [get]
func (h *DashboardHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Today())
}

// Series returns daily transaction totals for a date range
// @Summary     Transaction series
// @Description Get per-day transaction totals for the given range
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Range start (YYYY-MM-DD)"
// @Param       to query string false "Range end (YYYY-MM-DD)"
// @Success     200 {array} reports.DayTotal "Daily totals"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /dashboard/series [get]
func (h *DashboardHandler) Series(c *gin.Context) {
	var q SeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	series, err := h.dashboardService.Series(q.From, q.To)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// Profit returns revenue bucketed by item category
// @Summary     Profit by category
// @Description Get revenue totals per item category
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Category totals"
// @Router      /dashboard/profit [get]
func (h *DashboardHandler) Profit(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profit": h.dashboardService.ProfitByCategory()})
}
