package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
	"lnledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `w.id, w.user_id, w.name, w.created_at, w.deleted_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func (r *WalletRepo) querier(q ports.Querier) ports.Querier {
	if q != nil {
		return q
	}
	return r.pool
}

func walletQuery(f ports.WalletFilter) (string, []any) {
	query := `SELECT ` + walletColumns + ` FROM wallets w`
	var conds []string
	var args []any

	if f.AccessKey != "" {
		query += ` JOIN access_keys k ON k.wallet_id = w.id`
		args = append(args, f.AccessKey)
		conds = append(conds, fmt.Sprintf("k.key = $%d", len(args)))
	}
	if f.ID != "" {
		args = append(args, f.ID)
		conds = append(conds, fmt.Sprintf("w.id = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("w.user_id = $%d", len(args)))
	}
	if !f.IncludeDeleted {
		conds = append(conds, "w.deleted_at IS NULL")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return query, args
}

// GetWallet fetches a single wallet matching the filter, or nil.
func (r *WalletRepo) GetWallet(ctx context.Context, q ports.Querier, f ports.WalletFilter) (*domain.Wallet, error) {
	q = r.querier(q)
	query, args := walletQuery(f)

	w := &domain.Wallet{}
	err := q.QueryRow(ctx, query, args...).Scan(
		&w.ID, &w.UserID, &w.Name, &w.CreatedAt, &w.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	if f.IncludeTransactions {
		if err := r.loadTransactions(ctx, q, w); err != nil {
			return nil, err
		}
	}
	if f.IncludeAccessKeys {
		if err := r.loadAccessKeys(ctx, q, w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// GetWallets fetches all wallets matching the filter.
func (r *WalletRepo) GetWallets(ctx context.Context, q ports.Querier, f ports.WalletsFilter) ([]domain.Wallet, error) {
	q = r.querier(q)

	query := `SELECT ` + walletColumns + ` FROM wallets w`
	var conds []string
	var args []any
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("w.user_id = $%d", len(args)))
	}
	if !f.IncludeDeleted {
		conds = append(conds, "w.deleted_at IS NULL")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY w.created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.CreatedAt, &w.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}

	if f.IncludeTransactions {
		for i := range wallets {
			if err := r.loadTransactions(ctx, q, &wallets[i]); err != nil {
				return nil, err
			}
		}
	}
	return wallets, nil
}

// AddOrUpdateWallet inserts the wallet when its ID is unset, generating one,
// and updates it otherwise. The persisted entity is returned.
func (r *WalletRepo) AddOrUpdateWallet(ctx context.Context, q ports.Querier, w *domain.Wallet) (*domain.Wallet, error) {
	q = r.querier(q)

	if w.ID == "" {
		w.ID = uuid.NewString()
		if w.CreatedAt.IsZero() {
			w.CreatedAt = time.Now().UTC()
		}
		query := `INSERT INTO wallets (id, user_id, name, created_at, deleted_at)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := q.Exec(ctx, query, w.ID, w.UserID, w.Name, w.CreatedAt, w.DeletedAt); err != nil {
			return nil, fmt.Errorf("insert wallet: %w", err)
		}
		return w, nil
	}

	query := `UPDATE wallets SET name = $1, deleted_at = $2 WHERE id = $3`
	tag, err := q.Exec(ctx, query, w.Name, w.DeletedAt, w.ID)
	if err != nil {
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("wallet not found: %s", w.ID)
	}
	return w, nil
}

// RemoveWallet physically deletes an empty wallet. Wallets with transaction
// history are refused; callers soft-delete those instead.
func (r *WalletRepo) RemoveWallet(ctx context.Context, q ports.Querier, w *domain.Wallet) error {
	q = r.querier(q)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE wallet_id = $1`, w.ID).Scan(&count)
	if err != nil {
		return fmt.Errorf("count wallet transactions: %w", err)
	}
	if count > 0 {
		return apperror.ErrNotEmpty()
	}

	tag, err := q.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, w.ID)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	return nil
}

// GetBalance derives the wallet balance as the sum of settled amounts, msat.
func (r *WalletRepo) GetBalance(ctx context.Context, q ports.Querier, walletID string) (int64, error) {
	q = r.querier(q)

	var balance int64
	query := `SELECT COALESCE(SUM(amount_settled), 0) FROM transactions
		WHERE wallet_id = $1 AND amount_settled IS NOT NULL`
	if err := q.QueryRow(ctx, query, walletID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("get wallet balance: %w", err)
	}
	return balance, nil
}

func (r *WalletRepo) loadTransactions(ctx context.Context, q ports.Querier, w *domain.Wallet) error {
	query := `SELECT ` + transactionColumns + ` FROM transactions t
		WHERE t.wallet_id = $1 ORDER BY t.created_at DESC`
	rows, err := q.Query(ctx, query, w.ID)
	if err != nil {
		return fmt.Errorf("load wallet transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return err
		}
		w.Transactions = append(w.Transactions, *t)
	}
	return rows.Err()
}

func (r *WalletRepo) loadAccessKeys(ctx context.Context, q ports.Querier, w *domain.Wallet) error {
	query := `SELECT k.key, k.wallet_id, k.user_id, k.level, k.created_at
		FROM access_keys k WHERE k.wallet_id = $1 ORDER BY k.created_at`
	rows, err := q.Query(ctx, query, w.ID)
	if err != nil {
		return fmt.Errorf("load wallet access keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k domain.AccessKey
		if err := rows.Scan(&k.Key, &k.WalletID, &k.UserID, &k.Level, &k.CreatedAt); err != nil {
			return fmt.Errorf("scan access key: %w", err)
		}
		w.AccessKeys = append(w.AccessKeys, k)
	}
	return rows.Err()
}
