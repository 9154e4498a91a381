package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/paysbypays/merchant-dashboard/internal/model"
	"github.com/paysbypays/merchant-dashboard/internal/monitoring"
)

type Fetcher interface {
	FetchPayments(ctx context.Context) ([]model.PaymentRecord, error)
	FetchMerchants(ctx context.Context) ([]model.MerchantRecord, error)
}

// Refresher keeps the store populated from upstream. The two list
// fetches run concurrently and are independent: one failing leaves the
// other's result in place, and a failed fetch keeps the previous
// snapshot rather than blanking it.
type Refresher struct {
	store    *Store
	client   Fetcher
	interval time.Duration
}

func NewRefresher(store *Store, client Fetcher, interval time.Duration) *Refresher {
	return &Refresher{store: store, client: client, interval: interval}
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	if err := r.RefreshNow(ctx); err != nil {
		log.Error().Err(err).Msg("initial refresh incomplete")
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RefreshNow(ctx); err != nil {
				log.Error().Err(err).Msg("refresh incomplete")
			}
		}
	}
}

// RefreshNow fetches both lists concurrently. The returned error joins
// whatever fetches failed; partial success still updates the store.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	var g errgroup.Group
	var paymentsErr, merchantsErr error

	g.Go(func() error {
		payments, err := r.client.FetchPayments(ctx)
		monitoring.ObserveFetch("payments", err)
		if err != nil {
			paymentsErr = err
			log.Warn().Err(err).Msg("payments fetch failed, keeping previous snapshot")
			return nil
		}
		r.store.SetPayments(payments)
		monitoring.SetSnapshotSize("payments", len(payments))
		log.Info().Int("count", len(payments)).Msg("payments snapshot replaced")
		return nil
	})

	g.Go(func() error {
		merchants, err := r.client.FetchMerchants(ctx)
		monitoring.ObserveFetch("merchants", err)
		if err != nil {
			merchantsErr = err
			log.Warn().Err(err).Msg("merchants fetch failed, keeping previous snapshot")
			return nil
		}
		r.store.SetMerchants(merchants)
		monitoring.SetSnapshotSize("merchants", len(merchants))
		log.Info().Int("count", len(merchants)).Msg("merchants snapshot replaced")
		return nil
	})

	_ = g.Wait()
	return errors.Join(paymentsErr, merchantsErr)
}
