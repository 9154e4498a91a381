package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/paysbypays/merchant-dashboard/internal/dto"
	"github.com/paysbypays/merchant-dashboard/internal/middleware"
	"github.com/paysbypays/merchant-dashboard/internal/model"
	"github.com/paysbypays/merchant-dashboard/internal/service"
	"github.com/paysbypays/merchant-dashboard/internal/store"
)

// seededStore returns a store with 16 payments across two merchants:
// days 1..16 of July 2025, one payment per day, newest last in the raw
// list. Days 1-8 are SUCCESS with amount day*100, 9-12 FAILED, 13-16
// CANCELLED. Odd days belong to M1, even days to M2.
func seededStore(t *testing.T) *store.Store {
	t.Helper()

	payments := make([]model.PaymentRecord, 16)
	for i := 1; i <= 16; i++ {
		status := model.StatusSuccess
		amount := fmt.Sprintf("%d", i*100)
		switch {
		case i > 12:
			status = model.StatusCancelled
		case i > 8:
			status = model.StatusFailed
		}

		merchant := "M1"
		if i%2 == 0 {
			merchant = "M2"
		}

		payments[i-1] = model.PaymentRecord{
			PaymentCode:  fmt.Sprintf("PAY-2025-%04d", i),
			MerchantCode: merchant,
			Status:       status,
			Amount:       amount,
			PaymentAt:    fmt.Sprintf("2025-07-%02dT10:00:00Z", i),
		}
	}

	st := store.New()
	st.SetPayments(payments)
	st.SetMerchants([]model.MerchantRecord{
		{MerchantCode: "M1", MerchantName: "Alpha Mart", Status: "ACTIVE", BizType: "RETAIL"},
		{MerchantCode: "M2", MerchantName: "Beta Books", Status: "INACTIVE", BizType: "BOOKS"},
	})
	return st
}

func setupRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	agg := service.NewAggregationService()
	query := service.NewQueryService()

	router := gin.New()
	router.Use(middleware.ErrorHandler())

	router.GET("/health", NewHealthHandler(st).Health)

	api := router.Group("/api/v1")
	api.GET("/dashboard", NewDashboardHandler(st, agg, query).GetDashboard)
	api.GET("/transactions", NewTransactionHandler(st, agg, query, 7).List)
	api.GET("/merchants", NewMerchantHandler(st, agg, query).List)

	return router
}

func doGet(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

type transactionListResponse struct {
	Data       []dto.TransactionRow `json:"data"`
	Summary    service.Summary      `json:"summary"`
	Pagination dto.Pagination       `json:"pagination"`
}
