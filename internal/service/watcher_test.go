package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
	"lnledger/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type watcherTestDeps struct {
	watcher    *Watcher
	txRepo     *mocks.MockTransactionRepository
	settlement *mocks.MockSettlementService
	gateway    *mocks.MockLightningGateway
	ctrl       *gomock.Controller
}

func setupWatcher(t *testing.T) *watcherTestDeps {
	ctrl := gomock.NewController(t)
	d := &watcherTestDeps{
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		settlement: mocks.NewMockSettlementService(ctrl),
		gateway:    mocks.NewMockLightningGateway(ctrl),
		ctrl:       ctrl,
	}
	d.watcher = NewWatcher(
		d.txRepo, d.settlement, d.gateway, nil,
		DefaultWatchInterval, 2, zerolog.Nop(),
	)
	return d
}

func unpaidReceive(id string) domain.Transaction {
	return domain.Transaction{
		ID:        id,
		WalletID:  "wallet-1",
		InvoiceID: "inv-" + id,
		Amount:    10_000,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
}

func pendingSend(id string) domain.Transaction {
	pending := domain.StatusPending
	reserved := int64(-10_300)
	return domain.Transaction{
		ID:             id,
		WalletID:       "wallet-1",
		Amount:         10_000,
		AmountSettled:  &reserved,
		PaymentHash:    "hash-" + id,
		ExplicitStatus: &pending,
		ExpiresAt:      time.Now().UTC().Add(time.Hour),
	}
}

func TestWatcher_Sweep_SettlesPaidInvoice(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	paidAt := time.Now().UTC().Add(-time.Minute)

	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{unpaidReceive("rx-1")}, nil)
	d.gateway.EXPECT().GetInvoiceStatus(ctx, "inv-rx-1").Return(&ports.InvoiceStatus{
		State:          ports.InvoiceStateSettled,
		AmountReceived: 10_000,
		PaidAt:         &paidAt,
	}, nil)
	d.settlement.EXPECT().Settle(ctx, gomock.Any(), int64(10_000), int64(10_000), int64(0), paidAt).
		Return(true, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Sweep_CancelsCancelledInvoice(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{unpaidReceive("rx-1")}, nil)
	d.gateway.EXPECT().GetInvoiceStatus(ctx, "inv-rx-1").
		Return(&ports.InvoiceStatus{State: ports.InvoiceStateCancelled}, nil)
	d.settlement.EXPECT().Cancel(ctx, gomock.Any()).Return(true, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Sweep_InvalidatesUnknownInvoice(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{unpaidReceive("rx-1")}, nil)
	d.gateway.EXPECT().GetInvoiceStatus(ctx, "inv-rx-1").Return(nil, ports.ErrGatewayNotFound)
	d.settlement.EXPECT().Invalidate(ctx, gomock.Any()).Return(true, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Sweep_SettlesCompletedPayment(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{pendingSend("tx-1")}, nil)
	d.gateway.EXPECT().GetPaymentStatus(ctx, "hash-tx-1").Return(&ports.PaymentStatus{
		State:       ports.PaymentStateComplete,
		TotalAmount: 10_250,
		FeeAmount:   250,
	}, nil)
	d.settlement.EXPECT().Settle(ctx, gomock.Any(), int64(10_000), int64(-10_250), int64(250), gomock.Any()).
		Return(true, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Sweep_CancelsFailedPayment(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{pendingSend("tx-1")}, nil)
	d.gateway.EXPECT().GetPaymentStatus(ctx, "hash-tx-1").
		Return(&ports.PaymentStatus{State: ports.PaymentStateFailed}, nil)
	d.settlement.EXPECT().Cancel(ctx, gomock.Any()).Return(true, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Sweep_LeavesInFlightPaymentAlone(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{pendingSend("tx-1")}, nil)
	d.gateway.EXPECT().GetPaymentStatus(ctx, "hash-tx-1").
		Return(&ports.PaymentStatus{State: ports.PaymentStatePending}, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Sweep_IsolatesFailures(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.txRepo.EXPECT().GetTransactions(ctx, gomock.Any(), ports.TransactionsFilter{NonTerminal: true}).
		Return([]domain.Transaction{unpaidReceive("rx-1"), unpaidReceive("rx-2")}, nil)

	// One item erroring must not stop its sibling from converging.
	d.gateway.EXPECT().GetInvoiceStatus(ctx, "inv-rx-1").
		Return(nil, errors.New("node unreachable"))
	d.gateway.EXPECT().GetInvoiceStatus(ctx, "inv-rx-2").
		Return(&ports.InvoiceStatus{State: ports.InvoiceStateCancelled}, nil)
	d.settlement.EXPECT().Cancel(ctx, gomock.Any()).Return(true, nil)

	d.watcher.Sweep(ctx)
}

func TestWatcher_Run_StopsOnContextCancel(t *testing.T) {
	d := setupWatcher(t)
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	d.txRepo.EXPECT().GetTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	w := NewWatcher(d.txRepo, d.settlement, d.gateway, nil, 10*time.Millisecond, 1, zerolog.Nop())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
