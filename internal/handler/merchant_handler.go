package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paysbypays/merchant-dashboard/internal/service"
	"github.com/paysbypays/merchant-dashboard/internal/store"
)

type MerchantHandler struct {
	store *store.Store
	agg   *service.AggregationService
	query *service.QueryService
}

func NewMerchantHandler(st *store.Store, agg *service.AggregationService, query *service.QueryService) *MerchantHandler {
	return &MerchantHandler{store: st, agg: agg, query: query}
}

// List serves the merchant list with attributed revenue, ordered by
// ?sort=high|low (default high). Every known merchant appears, zero
// revenue included.
func (h *MerchantHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()

	rows := h.query.SortMerchantRevenue(
		h.agg.RevenueByMerchant(snap.Payments, snap.Merchants),
		c.DefaultQuery("sort", "high"),
	)

	c.JSON(http.StatusOK, gin.H{
		"data":           rows,
		"merchant_count": len(snap.Merchants),
	})
}
