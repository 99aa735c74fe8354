package ports

import (
	"context"
	"time"

	"lnledger/internal/core/domain"
)

// Publisher is the change notification feed. One event is published per
// terminal-state transition; delivery is best-effort broadcast.
type Publisher interface {
	Publish(ctx context.Context, event domain.TransactionEvent) error
}

// --- Service Ports (Business Logic) ---

// WalletService manages the wallet aggregate lifecycle.
type WalletService interface {
	CreateWallet(ctx context.Context, userID, name string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, f WalletFilter) (*domain.Wallet, error)
	GetWallets(ctx context.Context, f WalletsFilter) ([]domain.Wallet, error)
	UpdateWallet(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error)
	// DeleteWallet soft-deletes a wallet that still has transaction history,
	// to preserve the ledger, and hard-deletes an empty one.
	DeleteWallet(ctx context.Context, w *domain.Wallet) error
	GetBalance(ctx context.Context, walletID string) (int64, error)
	CreateAccessKey(ctx context.Context, walletID, userID string, level domain.AccessLevel) (*domain.AccessKey, error)
	RevokeAccessKey(ctx context.Context, key string) error
}

// ReceiveRequest holds validated input for creating an incoming transaction.
type ReceiveRequest struct {
	WalletID          string
	Amount            int64 // msat
	Description       string
	AttachDescription bool
	PrivateRouteHints bool
	Expiry            time.Duration
}

// SendRequest holds validated input for an outgoing payment.
type SendRequest struct {
	WalletID       string
	PaymentRequest domain.DecodedPaymentRequest
	Description    string
	// ExplicitAmount is required for zero-amount payment requests, msat.
	ExplicitAmount *int64
	// MaxFeePercent bounds the routing fee reserve. Zero means the default.
	MaxFeePercent float64
}

// SettlementService is the state machine governing a transaction's path from
// creation to terminal settlement.
type SettlementService interface {
	Receive(ctx context.Context, req ReceiveRequest) (*domain.Transaction, error)
	// Send settles internally against a matching unpaid receive when
	// possible, otherwise routes through the node gateway. A bounded-timeout
	// expiry on the gateway call leaves the transaction pending rather than
	// failing it.
	Send(ctx context.Context, req SendRequest) (*domain.Transaction, error)
	// Settle applies final amounts one-shot. It returns false without
	// changes when the transaction already reached a terminal state.
	Settle(ctx context.Context, t *domain.Transaction, amount, amountSettled int64, routingFee int64, date time.Time) (bool, error)
	Cancel(ctx context.Context, t *domain.Transaction) (bool, error)
	Invalidate(ctx context.Context, t *domain.Transaction) (bool, error)
	// ValidatePaymentRequest returns the matching internal receive, nil when
	// the request is external, or an error when the match is unusable.
	ValidatePaymentRequest(ctx context.Context, paymentRequest string) (*domain.Transaction, error)
}
