package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paysbypays/merchant-dashboard/internal/dto"
	"github.com/paysbypays/merchant-dashboard/internal/service"
	"github.com/paysbypays/merchant-dashboard/internal/store"
)

type TransactionHandler struct {
	store           *store.Store
	agg             *service.AggregationService
	query           *service.QueryService
	defaultPageSize int
}

func NewTransactionHandler(st *store.Store, agg *service.AggregationService, query *service.QueryService, defaultPageSize int) *TransactionHandler {
	return &TransactionHandler{store: st, agg: agg, query: query, defaultPageSize: defaultPageSize}
}

// List serves the transactions view: the filtered, newest-first payment
// list with a summary over the filtered set and page slicing. An
// unknown status value or unparseable date bound relaxes that filter
// instead of rejecting the request.
func (h *TransactionHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()

	filter := parseFilter(c)
	filtered := h.query.Apply(snap.Payments, filter, snap.Index)
	summary := h.agg.Summarize(filtered)

	p := dto.ParsePagination(c, h.defaultPageSize)
	pageItems, currentPage, totalPages := service.Paginate(filtered, p.Page, p.PageSize)

	c.JSON(http.StatusOK, gin.H{
		"data":       dto.NewTransactionRows(pageItems, snap.Index),
		"summary":    summary,
		"pagination": dto.NewPagination(currentPage, p.PageSize, len(filtered), totalPages),
	})
}

func parseFilter(c *gin.Context) service.Filter {
	return service.Filter{
		Status:   service.NormalizeStatus(c.DefaultQuery("status", service.FilterAll)),
		Merchant: c.DefaultQuery("merchant", service.FilterAll),
		Search:   c.Query("search"),
		DateFrom: service.ParseDateBound(c.Query("date_from")),
		DateTo:   service.ParseDateBound(c.Query("date_to")),
	}
}
