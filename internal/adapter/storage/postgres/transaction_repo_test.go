package postgres

import (
	"context"
	"testing"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionTestColumns() []string {
	return []string{
		"id", "wallet_id", "invoice_id", "amount", "amount_settled",
		"routing_fee", "payment_request", "payment_hash", "description", "explicit_status",
		"created_at", "expires_at", "paid_at",
	}
}

func newTestTransaction() *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		ID:             uuid.NewString(),
		WalletID:       "wallet-1",
		InvoiceID:      "inv-1",
		Amount:         21_000,
		PaymentRequest: "lnbc21u1...",
		PaymentHash:    "hash-1",
		Description:    "coffee",
		CreatedAt:      now,
		ExpiresAt:      now.Add(24 * time.Hour),
	}
}

func transactionRow(tx *domain.Transaction) *pgxmock.Rows {
	var explicit *string
	if tx.ExplicitStatus != nil {
		s := string(*tx.ExplicitStatus)
		explicit = &s
	}
	return pgxmock.NewRows(transactionTestColumns()).AddRow(
		tx.ID, tx.WalletID, tx.InvoiceID, tx.Amount, tx.AmountSettled,
		tx.RoutingFee, tx.PaymentRequest, tx.PaymentHash, tx.Description, explicit,
		tx.CreatedAt, tx.ExpiresAt, tx.PaidAt,
	)
}

func TestTransactionRepo_AddOrUpdateTransaction_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tx := newTestTransaction()
	tx.ID = ""

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(pgxmock.AnyArg(), tx.WalletID, tx.InvoiceID, tx.Amount, tx.AmountSettled,
			tx.RoutingFee, tx.PaymentRequest, tx.PaymentHash, tx.Description, pgxmock.AnyArg(),
			tx.CreatedAt, tx.ExpiresAt, tx.PaidAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	result, err := repo.AddOrUpdateTransaction(context.Background(), nil, tx)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_AddOrUpdateTransaction_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tx := newTestTransaction()
	settled := int64(21_000)
	paidAt := time.Now().UTC().Truncate(time.Microsecond)
	tx.AmountSettled = &settled
	tx.PaidAt = &paidAt

	mock.ExpectExec("UPDATE transactions SET").
		WithArgs(tx.Amount, tx.AmountSettled, tx.RoutingFee,
			tx.Description, pgxmock.AnyArg(), tx.ExpiresAt, tx.PaidAt, tx.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	result, err := repo.AddOrUpdateTransaction(context.Background(), nil, tx)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetTransaction_ByPaymentRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tx := newTestTransaction()

	mock.ExpectQuery(`SELECT .+ FROM transactions t WHERE t.payment_request = \$1 AND t.invoice_id <> ''`).
		WithArgs(tx.PaymentRequest).
		WillReturnRows(transactionRow(tx))

	result, err := repo.GetTransaction(context.Background(), nil, ports.TransactionFilter{
		PaymentRequest: tx.PaymentRequest,
		HasInvoice:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, tx.ID, result.ID)
	assert.Nil(t, result.ExplicitStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetTransaction_MapsExplicitStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tx := newTestTransaction()
	pending := domain.StatusPending
	tx.ExplicitStatus = &pending

	mock.ExpectQuery(`SELECT .+ FROM transactions t WHERE t.id = \$1`).
		WithArgs(tx.ID).
		WillReturnRows(transactionRow(tx))

	result, err := repo.GetTransaction(context.Background(), nil, ports.TransactionFilter{ID: tx.ID})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.ExplicitStatus)
	assert.Equal(t, domain.StatusPending, *result.ExplicitStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetTransaction_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery(`SELECT .+ FROM transactions t WHERE t.id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(transactionTestColumns()))

	result, err := repo.GetTransaction(context.Background(), nil, ports.TransactionFilter{ID: "missing"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetTransactions_NonTerminal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	receive := newTestTransaction()
	send := newTestTransaction()
	send.ID = uuid.NewString()
	send.InvoiceID = ""
	pending := domain.StatusPending
	send.ExplicitStatus = &pending

	rows := transactionRow(receive)
	pendingStr := string(pending)
	rows.AddRow(
		send.ID, send.WalletID, send.InvoiceID, send.Amount, send.AmountSettled,
		send.RoutingFee, send.PaymentRequest, send.PaymentHash, send.Description, &pendingStr,
		send.CreatedAt, send.ExpiresAt, send.PaidAt,
	)

	mock.ExpectQuery(`SELECT .+ FROM transactions t WHERE \(t.explicit_status = 'pending' OR`).
		WillReturnRows(rows)

	result, err := repo.GetTransactions(context.Background(), nil, ports.TransactionsFilter{NonTerminal: true})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].IsReceive())
	assert.False(t, result[1].IsReceive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateTransaction_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tx := newTestTransaction()

	mock.ExpectExec("UPDATE transactions SET").
		WithArgs(tx.Amount, tx.AmountSettled, tx.RoutingFee,
			tx.Description, pgxmock.AnyArg(), tx.ExpiresAt, tx.PaidAt, tx.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateTransaction(context.Background(), nil, tx)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_RemoveTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	tx := newTestTransaction()

	mock.ExpectExec(`DELETE FROM transactions WHERE id = \$1`).
		WithArgs(tx.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.RemoveTransaction(context.Background(), nil, tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
