package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paysbypays/merchant-dashboard/internal/store"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health reports liveness plus snapshot freshness. The upstream being
// down never makes this endpoint unhealthy; stale data is a reportable
// condition, not a failure, in a best-effort reporting tool.
func (h *HealthHandler) Health(c *gin.Context) {
	snap := h.store.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"payment_count":     len(snap.Payments),
		"merchant_count":    len(snap.Merchants),
		"payments_fetched":  formatFetchTime(snap.PaymentsAt),
		"merchants_fetched": formatFetchTime(snap.MerchantsAt),
	})
}

func formatFetchTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}
