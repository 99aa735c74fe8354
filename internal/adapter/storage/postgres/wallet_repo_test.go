package postgres

import (
	"context"
	"testing"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
	"lnledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet() *domain.Wallet {
	return &domain.Wallet{
		ID:        uuid.NewString(),
		UserID:    "user-1",
		Name:      "spending",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func walletTestColumns() []string {
	return []string{"id", "user_id", "name", "created_at", "deleted_at"}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletTestColumns()).AddRow(
		w.ID, w.UserID, w.Name, w.CreatedAt, w.DeletedAt,
	)
}

func TestWalletRepo_AddOrUpdateWallet_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := &domain.Wallet{UserID: "user-1", Name: "spending"}

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(pgxmock.AnyArg(), "user-1", "spending", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	result, err := repo.AddOrUpdateWallet(context.Background(), nil, w)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AddOrUpdateWallet_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()
	w.Name = "renamed"

	mock.ExpectExec("UPDATE wallets SET").
		WithArgs(w.Name, w.DeletedAt, w.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	result, err := repo.AddOrUpdateWallet(context.Background(), nil, w)
	require.NoError(t, err)
	assert.Equal(t, "renamed", result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetWallet_ByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery(`SELECT .+ FROM wallets w WHERE w.id = \$1 AND w.deleted_at IS NULL`).
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))

	result, err := repo.GetWallet(context.Background(), nil, ports.WalletFilter{ID: w.ID})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.Equal(t, w.Name, result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetWallet_ByAccessKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery(`SELECT .+ FROM wallets w JOIN access_keys k ON k.wallet_id = w.id WHERE k.key = \$1`).
		WithArgs("key-1").
		WillReturnRows(walletRow(w))

	result, err := repo.GetWallet(context.Background(), nil, ports.WalletFilter{AccessKey: "key-1"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetWallet_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery(`SELECT .+ FROM wallets w`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(walletTestColumns()))

	result, err := repo.GetWallet(context.Background(), nil, ports.WalletFilter{ID: "missing"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetWallet_WithTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()
	settled := int64(21_000)
	paidAt := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery(`SELECT .+ FROM wallets w`).
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))
	mock.ExpectQuery(`SELECT .+ FROM transactions t\s+WHERE t.wallet_id = \$1`).
		WithArgs(w.ID).
		WillReturnRows(pgxmock.NewRows(transactionTestColumns()).AddRow(
			"tx-1", w.ID, "inv-1", int64(21_000), &settled,
			&settled, "lnbc...", "hash-1", "", nil,
			paidAt.Add(-time.Hour), paidAt.Add(time.Hour), &paidAt,
		))

	result, err := repo.GetWallet(context.Background(), nil, ports.WalletFilter{
		ID:                  w.ID,
		IncludeTransactions: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "tx-1", result.Transactions[0].ID)
	assert.Equal(t, int64(21_000), result.Balance())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_RemoveWallet_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE wallet_id = \$1`).
		WithArgs(w.ID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectExec(`DELETE FROM wallets WHERE id = \$1`).
		WithArgs(w.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.RemoveWallet(context.Background(), nil, w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_RemoveWallet_RefusesHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions WHERE wallet_id = \$1`).
		WithArgs(w.ID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	err = repo.RemoveWallet(context.Background(), nil, w)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "LED_001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_settled\), 0\) FROM transactions`).
		WithArgs("wallet-1").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(42_000)))

	balance, err := repo.GetBalance(context.Background(), nil, "wallet-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42_000), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
