package ports

import (
	"context"

	"lnledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface shared by a connection pool and an open
// transaction. Repositories accept it explicitly so the same method works
// inside and outside an atomic unit.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WalletFilter selects a single wallet. Zero-valued fields are ignored.
type WalletFilter struct {
	ID                  string
	UserID              string
	AccessKey           string
	IncludeTransactions bool
	IncludeAccessKeys   bool
	IncludeDeleted      bool
}

// WalletsFilter selects a set of wallets.
type WalletsFilter struct {
	UserID              string
	IncludeTransactions bool
	IncludeDeleted      bool
}

// TransactionFilter selects a single transaction. Zero-valued fields are ignored.
type TransactionFilter struct {
	ID             string
	WalletID       string
	UserID         string
	InvoiceID      string
	PaymentRequest string
	PaymentHash    string
	// HasInvoice restricts the match to receive transactions. Sends settled
	// internally share the payment request string with the invoice they paid.
	HasInvoice bool
}

// TransactionsFilter selects a set of transactions.
type TransactionsFilter struct {
	WalletID string
	UserID   string
	// NonTerminal restricts the result to transactions the reconciliation
	// watcher still needs to converge: pending sends and live unpaid receives.
	NonTerminal bool
}

// WalletRepository defines persistence operations for the wallet aggregate.
// Absent rows are returned as nil, not as errors.
type WalletRepository interface {
	GetWallet(ctx context.Context, q Querier, f WalletFilter) (*domain.Wallet, error)
	GetWallets(ctx context.Context, q Querier, f WalletsFilter) ([]domain.Wallet, error)
	// AddOrUpdateWallet inserts when the ID is unset (generating one), else
	// updates, and returns the persisted entity.
	AddOrUpdateWallet(ctx context.Context, q Querier, w *domain.Wallet) (*domain.Wallet, error)
	// RemoveWallet physically deletes a wallet. It fails with a NotEmptyError
	// when transaction history exists.
	RemoveWallet(ctx context.Context, q Querier, w *domain.Wallet) error
	// GetBalance returns the wallet balance in millisatoshis, derived as the
	// sum of settled transaction amounts.
	GetBalance(ctx context.Context, q Querier, walletID string) (int64, error)
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	GetTransaction(ctx context.Context, q Querier, f TransactionFilter) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, q Querier, f TransactionsFilter) ([]domain.Transaction, error)
	AddOrUpdateTransaction(ctx context.Context, q Querier, t *domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, q Querier, t *domain.Transaction) error
	RemoveTransaction(ctx context.Context, q Querier, t *domain.Transaction) error
}

// AccessKeyRepository defines persistence operations for wallet access keys.
type AccessKeyRepository interface {
	AddAccessKey(ctx context.Context, q Querier, k *domain.AccessKey) error
	RemoveAccessKey(ctx context.Context, q Querier, key string) error
	GetAccessKey(ctx context.Context, q Querier, key string) (*domain.AccessKey, error)
}

// Transactor executes a unit of work within one serializable database
// transaction, retrying automatically on transient serialization conflicts
// and rolling back on error. Either every write in fn becomes visible, or none.
type Transactor interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context, q Querier) error) error
}
