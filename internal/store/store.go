package store

import (
	"sync"
	"time"

	"github.com/paysbypays/merchant-dashboard/internal/model"
)

// Store holds the record snapshots last fetched from upstream. Each
// fetch replaces a list wholesale; nothing mutates a snapshot in place,
// so readers can hold a Snapshot across a refresh safely.
type Store struct {
	mu          sync.RWMutex
	payments    []model.PaymentRecord
	merchants   []model.MerchantRecord
	index       map[string]model.MerchantRecord
	paymentsAt  time.Time
	merchantsAt time.Time
}

// Snapshot is a consistent view of the store at one point in time.
// The slices and index must be treated as read-only.
type Snapshot struct {
	Payments    []model.PaymentRecord
	Merchants   []model.MerchantRecord
	Index       map[string]model.MerchantRecord
	PaymentsAt  time.Time
	MerchantsAt time.Time
}

func New() *Store {
	return &Store{index: map[string]model.MerchantRecord{}}
}

func (s *Store) SetPayments(payments []model.PaymentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = payments
	s.paymentsAt = time.Now()
}

// SetMerchants replaces the merchant list and rebuilds the code index.
// Duplicate merchant codes are an upstream data-quality fault; the last
// record wins.
func (s *Store) SetMerchants(merchants []model.MerchantRecord) {
	index := make(map[string]model.MerchantRecord, len(merchants))
	for _, m := range merchants {
		index[m.MerchantCode] = m
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants = merchants
	s.index = index
	s.merchantsAt = time.Now()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Payments:    s.payments,
		Merchants:   s.merchants,
		Index:       s.index,
		PaymentsAt:  s.paymentsAt,
		MerchantsAt: s.merchantsAt,
	}
}
