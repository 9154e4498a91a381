package dto

import (
	"github.com/paysbypays/merchant-dashboard/internal/model"
)

// TransactionRow is one table row on the transactions view: the raw
// payment plus the resolved merchant name. MerchantName is empty while
// the merchant snapshot has not arrived or the code is unknown.
type TransactionRow struct {
	PaymentCode  string              `json:"payment_code"`
	MerchantCode string              `json:"merchant_code"`
	MerchantName string              `json:"merchant_name"`
	Status       model.PaymentStatus `json:"status"`
	Amount       string              `json:"amount"`
	PaymentAt    string              `json:"payment_at"`
}

func NewTransactionRow(p model.PaymentRecord, index map[string]model.MerchantRecord) TransactionRow {
	row := TransactionRow{
		PaymentCode:  p.PaymentCode,
		MerchantCode: p.MerchantCode,
		Status:       p.Status,
		Amount:       p.Amount,
		PaymentAt:    p.PaymentAt,
	}
	if m, ok := index[p.MerchantCode]; ok {
		row.MerchantName = m.MerchantName
	}
	return row
}

func NewTransactionRows(payments []model.PaymentRecord, index map[string]model.MerchantRecord) []TransactionRow {
	rows := make([]TransactionRow, len(payments))
	for i, p := range payments {
		rows[i] = NewTransactionRow(p, index)
	}
	return rows
}

// StatusBreakdown feeds the payment-ratio pie chart.
type StatusBreakdown struct {
	Success   int `json:"success"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}
