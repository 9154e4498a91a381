package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paysbypays/merchant-dashboard/internal/model"
)

func samplePayments() []model.PaymentRecord {
	return []model.PaymentRecord{
		{PaymentCode: "PAY-2025-0001", MerchantCode: "M1", Status: model.StatusSuccess, Amount: "1000", PaymentAt: "2025-07-01T10:00:00Z"},
		{PaymentCode: "PAY-2025-0002", MerchantCode: "M1", Status: model.StatusFailed, Amount: "500", PaymentAt: "2025-07-02T10:00:00Z"},
		{PaymentCode: "PAY-2025-0003", MerchantCode: "M2", Status: model.StatusSuccess, Amount: "2000", PaymentAt: "2025-07-03T10:00:00Z"},
	}
}

func sampleMerchants() []model.MerchantRecord {
	return []model.MerchantRecord{
		{MerchantCode: "M1", MerchantName: "Alpha Mart", Status: "ACTIVE", BizType: "RETAIL"},
		{MerchantCode: "M2", MerchantName: "Beta Books", Status: "INACTIVE", BizType: "BOOKS"},
	}
}

func TestAggregationService_Summarize(t *testing.T) {
	svc := NewAggregationService()

	t.Run("happy: counts and revenue", func(t *testing.T) {
		summary := svc.Summarize(samplePayments())

		assert.Equal(t, 3, summary.TotalCount)
		assert.Equal(t, 2, summary.SuccessCount)
		assert.Equal(t, 1, summary.FailedCount)
		assert.Equal(t, 0, summary.CancelledCount)
		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(3000)),
			"revenue should sum SUCCESS only, got %s", summary.TotalRevenue)
	})

	t.Run("happy: status counts sum to total", func(t *testing.T) {
		payments := append(samplePayments(), model.PaymentRecord{
			PaymentCode: "PAY-2025-0004", MerchantCode: "M2", Status: model.StatusCancelled, Amount: "750", PaymentAt: "2025-07-04T10:00:00Z",
		})

		summary := svc.Summarize(payments)
		assert.Equal(t, summary.TotalCount, summary.SuccessCount+summary.FailedCount+summary.CancelledCount)
	})

	t.Run("happy: revenue independent of input order", func(t *testing.T) {
		payments := samplePayments()
		reversed := []model.PaymentRecord{payments[2], payments[1], payments[0]}

		assert.True(t, svc.Summarize(payments).TotalRevenue.Equal(svc.Summarize(reversed).TotalRevenue))
	})

	t.Run("edge: empty input", func(t *testing.T) {
		summary := svc.Summarize(nil)

		assert.Equal(t, 0, summary.TotalCount)
		assert.True(t, summary.TotalRevenue.IsZero())
	})

	t.Run("bad: malformed amount excluded, not summed as zero", func(t *testing.T) {
		payments := append(samplePayments(), model.PaymentRecord{
			PaymentCode: "PAY-2025-9999", MerchantCode: "M1", Status: model.StatusSuccess, Amount: "not-a-number", PaymentAt: "2025-07-05T10:00:00Z",
		})

		summary := svc.Summarize(payments)

		// The record still counts; only its amount is dropped.
		assert.Equal(t, 4, summary.TotalCount)
		assert.Equal(t, 3, summary.SuccessCount)
		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(3000)))
	})

	t.Run("edge: failed amounts never counted", func(t *testing.T) {
		payments := []model.PaymentRecord{
			{PaymentCode: "P1", MerchantCode: "M1", Status: model.StatusFailed, Amount: "9999", PaymentAt: "2025-07-01T10:00:00Z"},
			{PaymentCode: "P2", MerchantCode: "M1", Status: model.StatusCancelled, Amount: "8888", PaymentAt: "2025-07-01T11:00:00Z"},
		}

		assert.True(t, svc.Summarize(payments).TotalRevenue.IsZero())
	})
}

func TestAggregationService_RevenueByMerchant(t *testing.T) {
	svc := NewAggregationService()

	t.Run("happy: attribution with zero defaults", func(t *testing.T) {
		payments := []model.PaymentRecord{
			{PaymentCode: "P1", MerchantCode: "M1", Status: model.StatusSuccess, Amount: "100", PaymentAt: "2025-07-01T10:00:00Z"},
		}

		rows := svc.RevenueByMerchant(payments, sampleMerchants())
		require.Len(t, rows, 2)

		assert.Equal(t, "M1", rows[0].MerchantCode)
		assert.Equal(t, "Alpha Mart", rows[0].MerchantName)
		assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(100)))

		assert.Equal(t, "M2", rows[1].MerchantCode)
		assert.True(t, rows[1].Revenue.IsZero())
	})

	t.Run("happy: only SUCCESS accumulates", func(t *testing.T) {
		rows := svc.RevenueByMerchant(samplePayments(), sampleMerchants())
		require.Len(t, rows, 2)

		assert.True(t, rows[0].Revenue.Equal(decimal.NewFromInt(1000)), "M1 failed payment must not count")
		assert.True(t, rows[1].Revenue.Equal(decimal.NewFromInt(2000)))
	})

	t.Run("edge: payment for unknown merchant produces no row", func(t *testing.T) {
		payments := append(samplePayments(), model.PaymentRecord{
			PaymentCode: "P9", MerchantCode: "GHOST", Status: model.StatusSuccess, Amount: "5000", PaymentAt: "2025-07-06T10:00:00Z",
		})

		rows := svc.RevenueByMerchant(payments, sampleMerchants())
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.NotEqual(t, "GHOST", row.MerchantCode)
		}

		// The unattributable amount still shows up in the global total.
		assert.True(t, svc.Summarize(payments).TotalRevenue.Equal(decimal.NewFromInt(8000)))
	})

	t.Run("edge: no merchants yields no rows", func(t *testing.T) {
		rows := svc.RevenueByMerchant(samplePayments(), nil)
		assert.Empty(t, rows)
	})
}
