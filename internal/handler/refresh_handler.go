package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paysbypays/merchant-dashboard/internal/middleware"
	"github.com/paysbypays/merchant-dashboard/internal/store"
)

type RefreshHandler struct {
	refresher *store.Refresher
	store     *store.Store
}

func NewRefreshHandler(refresher *store.Refresher, st *store.Store) *RefreshHandler {
	return &RefreshHandler{refresher: refresher, store: st}
}

// Refresh pulls both upstream lists immediately instead of waiting for
// the next poll tick. A partial failure keeps whatever succeeded and
// reports 502 for the rest.
func (h *RefreshHandler) Refresh(c *gin.Context) {
	if err := h.refresher.RefreshNow(c.Request.Context()); err != nil {
		_ = c.Error(&middleware.UpstreamError{Err: err})
		return
	}

	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":         "refreshed",
		"payment_count":  len(snap.Payments),
		"merchant_count": len(snap.Merchants),
	})
}
