package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	// DefaultWatchInterval is the pause between reconciliation sweeps.
	DefaultWatchInterval = 5 * time.Second

	// DefaultWatchConcurrency bounds the per-transaction fan-out of a sweep.
	DefaultWatchConcurrency = 8
)

// Watcher is the background reconciliation loop. Every interval it lists the
// transactions still in a non-terminal state and drives each one toward a
// terminal state from the node gateway's point of view. Items are
// reconciled concurrently and fault-isolated: one failure never aborts the
// sweep or its siblings.
type Watcher struct {
	txRepo      ports.TransactionRepository
	settlement  ports.SettlementService
	gateway     ports.LightningGateway
	db          ports.Querier
	interval    time.Duration
	concurrency int
	log         zerolog.Logger
}

// NewWatcher creates a reconciliation watcher. Zero interval or concurrency
// select the defaults.
func NewWatcher(
	txRepo ports.TransactionRepository,
	settlement ports.SettlementService,
	gateway ports.LightningGateway,
	db ports.Querier,
	interval time.Duration,
	concurrency int,
	log zerolog.Logger,
) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	if concurrency <= 0 {
		concurrency = DefaultWatchConcurrency
	}
	return &Watcher{
		txRepo:      txRepo,
		settlement:  settlement,
		gateway:     gateway,
		db:          db,
		interval:    interval,
		concurrency: concurrency,
		log:         log,
	}
}

// Run blocks, sweeping every interval until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info().
		Dur("interval", w.interval).
		Int("concurrency", w.concurrency).
		Msg("reconciliation watcher started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("reconciliation watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep reconciles every non-terminal transaction once, joining all items
// before returning.
func (w *Watcher) Sweep(ctx context.Context) {
	pending, err := w.txRepo.GetTransactions(ctx, w.db, ports.TransactionsFilter{NonTerminal: true})
	if err != nil {
		w.log.Error().Err(err).Msg("failed to list pending transactions")
		return
	}
	if len(pending) == 0 {
		return
	}

	sem := make(chan struct{}, w.concurrency)
	var wg sync.WaitGroup
	for i := range pending {
		t := pending[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					w.log.Error().
						Str("tx_id", t.ID).
						Interface("panic", r).
						Msg("reconciliation panicked")
				}
			}()
			if err := w.reconcile(ctx, &t); err != nil {
				w.log.Warn().Err(err).Str("tx_id", t.ID).Msg("reconciliation failed")
			}
		}()
	}
	wg.Wait()
}

func (w *Watcher) reconcile(ctx context.Context, t *domain.Transaction) error {
	if t.IsReceive() {
		return w.reconcileReceive(ctx, t)
	}
	return w.reconcileSend(ctx, t)
}

// reconcileReceive converges an unpaid invoice against node state.
func (w *Watcher) reconcileReceive(ctx context.Context, t *domain.Transaction) error {
	status, err := w.gateway.GetInvoiceStatus(ctx, t.InvoiceID)
	if errors.Is(err, ports.ErrGatewayNotFound) {
		_, err := w.settlement.Invalidate(ctx, t)
		return err
	}
	if err != nil {
		return err
	}

	switch status.State {
	case ports.InvoiceStateSettled:
		paidAt := time.Now().UTC()
		if status.PaidAt != nil {
			paidAt = *status.PaidAt
		}
		fee := t.Amount - status.AmountReceived
		_, err := w.settlement.Settle(ctx, t, t.Amount, status.AmountReceived, fee, paidAt)
		return err
	case ports.InvoiceStateCancelled:
		_, err := w.settlement.Cancel(ctx, t)
		return err
	default:
		return nil
	}
}

// reconcileSend converges a pending outgoing payment against node state.
func (w *Watcher) reconcileSend(ctx context.Context, t *domain.Transaction) error {
	status, err := w.gateway.GetPaymentStatus(ctx, t.PaymentHash)
	if errors.Is(err, ports.ErrGatewayNotFound) {
		_, err := w.settlement.Invalidate(ctx, t)
		return err
	}
	if err != nil {
		return err
	}

	switch status.State {
	case ports.PaymentStateComplete:
		amount := status.TotalAmount - status.FeeAmount
		_, err := w.settlement.Settle(ctx, t, amount, -status.TotalAmount, status.FeeAmount, time.Now().UTC())
		return err
	case ports.PaymentStateFailed:
		_, err := w.settlement.Cancel(ctx, t)
		return err
	default:
		w.log.Debug().
			Str("tx_id", t.ID).
			Str("state", string(status.State)).
			Msg("payment not yet final")
		return nil
	}
}
