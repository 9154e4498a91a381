package service

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/paysbypays/merchant-dashboard/internal/model"
)

type AggregationService struct{}

func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

type Summary struct {
	TotalCount     int             `json:"total_count"`
	SuccessCount   int             `json:"success_count"`
	FailedCount    int             `json:"failed_count"`
	CancelledCount int             `json:"cancelled_count"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// Summarize computes status counts and the revenue total in one pass.
// Revenue sums SUCCESS payments only; a malformed amount is logged and
// excluded rather than counted as zero.
func (s *AggregationService) Summarize(payments []model.PaymentRecord) Summary {
	summary := Summary{TotalRevenue: decimal.Zero}

	for _, p := range payments {
		summary.TotalCount++

		switch p.Status {
		case model.StatusSuccess:
			summary.SuccessCount++
			amount, ok := p.DecimalAmount()
			if !ok {
				log.Warn().
					Str("payment_code", p.PaymentCode).
					Str("amount", p.Amount).
					Msg("malformed amount excluded from revenue")
				continue
			}
			summary.TotalRevenue = summary.TotalRevenue.Add(amount)
		case model.StatusFailed:
			summary.FailedCount++
		case model.StatusCancelled:
			summary.CancelledCount++
		}
	}

	return summary
}

// RevenueByMerchant attributes SUCCESS revenue to merchants. Every
// known merchant gets a row, zero revenue included, in merchant-list
// order. Payments whose merchant code is absent from the list still
// count toward the global summary but produce no row here.
func (s *AggregationService) RevenueByMerchant(payments []model.PaymentRecord, merchants []model.MerchantRecord) []model.MerchantRevenue {
	byCode := make(map[string]decimal.Decimal, len(merchants))

	for _, p := range payments {
		if p.Status != model.StatusSuccess {
			continue
		}
		amount, ok := p.DecimalAmount()
		if !ok {
			log.Warn().
				Str("payment_code", p.PaymentCode).
				Str("amount", p.Amount).
				Msg("malformed amount excluded from merchant revenue")
			continue
		}
		byCode[p.MerchantCode] = byCode[p.MerchantCode].Add(amount)
	}

	rows := make([]model.MerchantRevenue, len(merchants))
	for i, m := range merchants {
		revenue, ok := byCode[m.MerchantCode]
		if !ok {
			revenue = decimal.Zero
		}
		rows[i] = model.MerchantRevenue{
			MerchantCode: m.MerchantCode,
			MerchantName: m.MerchantName,
			Status:       m.Status,
			BizType:      m.BizType,
			Revenue:      revenue,
		}
	}

	return rows
}
