package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `t.id, t.wallet_id, t.invoice_id, t.amount, t.amount_settled,
	t.routing_fee, t.payment_request, t.payment_hash, t.description, t.explicit_status,
	t.created_at, t.expires_at, t.paid_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

func (r *TransactionRepo) querier(q ports.Querier) ports.Querier {
	if q != nil {
		return q
	}
	return r.pool
}

// scanTransaction reads one transaction row. The explicit status column is
// nullable text and mapped back onto the typed override.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var explicit *string
	err := row.Scan(
		&t.ID, &t.WalletID, &t.InvoiceID, &t.Amount, &t.AmountSettled,
		&t.RoutingFee, &t.PaymentRequest, &t.PaymentHash, &t.Description, &explicit,
		&t.CreatedAt, &t.ExpiresAt, &t.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	if explicit != nil {
		status := domain.TransactionStatus(*explicit)
		t.ExplicitStatus = &status
	}
	return t, nil
}

func explicitStatusArg(t *domain.Transaction) *string {
	if t.ExplicitStatus == nil {
		return nil
	}
	s := string(*t.ExplicitStatus)
	return &s
}

func transactionQuery(f ports.TransactionFilter) (string, []any) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t`
	var conds []string
	var args []any

	if f.UserID != "" {
		query += ` JOIN wallets w ON w.id = t.wallet_id`
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("w.user_id = $%d", len(args)))
	}
	if f.ID != "" {
		args = append(args, f.ID)
		conds = append(conds, fmt.Sprintf("t.id = $%d", len(args)))
	}
	if f.WalletID != "" {
		args = append(args, f.WalletID)
		conds = append(conds, fmt.Sprintf("t.wallet_id = $%d", len(args)))
	}
	if f.InvoiceID != "" {
		args = append(args, f.InvoiceID)
		conds = append(conds, fmt.Sprintf("t.invoice_id = $%d", len(args)))
	}
	if f.PaymentRequest != "" {
		args = append(args, f.PaymentRequest)
		conds = append(conds, fmt.Sprintf("t.payment_request = $%d", len(args)))
	}
	if f.PaymentHash != "" {
		args = append(args, f.PaymentHash)
		conds = append(conds, fmt.Sprintf("t.payment_hash = $%d", len(args)))
	}
	if f.HasInvoice {
		conds = append(conds, "t.invoice_id <> ''")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.created_at DESC LIMIT 1"
	return query, args
}

// GetTransaction fetches a single transaction matching the filter, or nil.
func (r *TransactionRepo) GetTransaction(ctx context.Context, q ports.Querier, f ports.TransactionFilter) (*domain.Transaction, error) {
	q = r.querier(q)
	query, args := transactionQuery(f)

	t, err := scanTransaction(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// GetTransactions fetches all transactions matching the filter. NonTerminal
// selects pending sends plus unpaid, unexpired receives for reconciliation.
func (r *TransactionRepo) GetTransactions(ctx context.Context, q ports.Querier, f ports.TransactionsFilter) ([]domain.Transaction, error) {
	q = r.querier(q)

	query := `SELECT ` + transactionColumns + ` FROM transactions t`
	var conds []string
	var args []any

	if f.UserID != "" {
		query += ` JOIN wallets w ON w.id = t.wallet_id`
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("w.user_id = $%d", len(args)))
	}
	if f.WalletID != "" {
		args = append(args, f.WalletID)
		conds = append(conds, fmt.Sprintf("t.wallet_id = $%d", len(args)))
	}
	if f.NonTerminal {
		conds = append(conds, `(t.explicit_status = 'pending' OR
			(t.explicit_status IS NULL AND t.amount_settled IS NULL AND t.expires_at > NOW()))`)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

// AddOrUpdateTransaction inserts the transaction when its ID is unset,
// generating one, and updates it otherwise.
func (r *TransactionRepo) AddOrUpdateTransaction(ctx context.Context, q ports.Querier, t *domain.Transaction) (*domain.Transaction, error) {
	q = r.querier(q)

	if t.ID == "" {
		t.ID = uuid.NewString()
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now().UTC()
		}
		query := `INSERT INTO transactions (id, wallet_id, invoice_id, amount, amount_settled,
			routing_fee, payment_request, payment_hash, description, explicit_status,
			created_at, expires_at, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		_, err := q.Exec(ctx, query,
			t.ID, t.WalletID, t.InvoiceID, t.Amount, t.AmountSettled,
			t.RoutingFee, t.PaymentRequest, t.PaymentHash, t.Description, explicitStatusArg(t),
			t.CreatedAt, t.ExpiresAt, t.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert transaction: %w", err)
		}
		return t, nil
	}

	if err := r.UpdateTransaction(ctx, q, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTransaction persists the mutable fields of an existing transaction.
// The payment request string is immutable once set and is not touched.
func (r *TransactionRepo) UpdateTransaction(ctx context.Context, q ports.Querier, t *domain.Transaction) error {
	q = r.querier(q)

	query := `UPDATE transactions SET amount = $1, amount_settled = $2, routing_fee = $3,
		description = $4, explicit_status = $5, expires_at = $6, paid_at = $7
		WHERE id = $8`
	tag, err := q.Exec(ctx, query,
		t.Amount, t.AmountSettled, t.RoutingFee,
		t.Description, explicitStatusArg(t), t.ExpiresAt, t.PaidAt,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", t.ID)
	}
	return nil
}

// RemoveTransaction deletes a transaction outright. Only provisional records
// that never moved money are removed this way.
func (r *TransactionRepo) RemoveTransaction(ctx context.Context, q ports.Querier, t *domain.Transaction) error {
	q = r.querier(q)

	tag, err := q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, t.ID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", t.ID)
	}
	return nil
}
