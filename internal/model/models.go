package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	StatusSuccess   PaymentStatus = "SUCCESS"
	StatusFailed    PaymentStatus = "FAILED"
	StatusCancelled PaymentStatus = "CANCELLED"
)

// PaymentRecord is one transaction attempt as delivered by the upstream
// list endpoint. Field tags follow the upstream wire names.
type PaymentRecord struct {
	PaymentCode  string        `json:"paymentCode"`
	MerchantCode string        `json:"mchtCode"`
	Status       PaymentStatus `json:"status"`
	Amount       string        `json:"amount"`
	PaymentAt    string        `json:"paymentAt"`
}

// MerchantRecord is one registered seller. Merchant status is free-form
// upstream; ACTIVE, INACTIVE and CLOSED are the observed values.
type MerchantRecord struct {
	MerchantCode string `json:"mchtCode"`
	MerchantName string `json:"mchtName"`
	Status       string `json:"status"`
	BizType      string `json:"bizType"`
}

type MerchantRevenue struct {
	MerchantCode string          `json:"merchant_code"`
	MerchantName string          `json:"merchant_name"`
	Status       string          `json:"status"`
	BizType      string          `json:"biz_type"`
	Revenue      decimal.Decimal `json:"revenue"`
}

var paymentAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parses the record's PaymentAt. Upstream timestamps are
// ISO-8601-like but not guaranteed to carry a zone, so a few layouts
// are tried in order. ok is false for an unparseable value; callers
// get the zero time, which sorts last in newest-first order.
func (p PaymentRecord) Time() (t time.Time, ok bool) {
	for _, layout := range paymentAtLayouts {
		if parsed, err := time.Parse(layout, p.PaymentAt); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DecimalAmount parses the record's Amount string. A malformed amount
// reports ok false and must be excluded from revenue sums, never
// summed as zero silently.
func (p PaymentRecord) DecimalAmount() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
