package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paysbypays/merchant-dashboard/internal/dto"
	"github.com/paysbypays/merchant-dashboard/internal/service"
	"github.com/paysbypays/merchant-dashboard/internal/store"
)

type DashboardHandler struct {
	store *store.Store
	agg   *service.AggregationService
	query *service.QueryService
}

func NewDashboardHandler(st *store.Store, agg *service.AggregationService, query *service.QueryService) *DashboardHandler {
	return &DashboardHandler{store: st, agg: agg, query: query}
}

// GetDashboard serves the landing view: full-set totals, the status
// breakdown behind the pie chart, recent payments newest first, and
// the per-merchant revenue list ordered by ?sort=high|low.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap := h.store.Snapshot()

	summary := h.agg.Summarize(snap.Payments)

	recent := h.query.Apply(snap.Payments, service.Filter{}, snap.Index)
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil && limit > 0 && limit < len(recent) {
		recent = recent[:limit]
	}

	revenue := h.query.SortMerchantRevenue(
		h.agg.RevenueByMerchant(snap.Payments, snap.Merchants),
		c.DefaultQuery("sort", "high"),
	)

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":  summary.TotalRevenue,
		"total_count":    summary.TotalCount,
		"merchant_count": len(snap.Merchants),
		"status_breakdown": dto.StatusBreakdown{
			Success:   summary.SuccessCount,
			Failed:    summary.FailedCount,
			Cancelled: summary.CancelledCount,
		},
		"recent_payments":  dto.NewTransactionRows(recent, snap.Index),
		"merchant_revenue": revenue,
	})
}
