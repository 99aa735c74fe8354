package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
	"lnledger/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	// DefaultMaxFeePercent is the routing fee reserve applied to external
	// sends when the caller does not override it.
	DefaultMaxFeePercent = 3.0

	// DefaultPayTimeout bounds a single pay-invoice call. Hold-invoice
	// payments can legitimately outlive it; expiry leaves the transaction
	// pending for the reconciliation watcher instead of failing it.
	DefaultPayTimeout = 20 * time.Second

	// DefaultInvoiceExpiry applies to receives without an explicit expiry.
	DefaultInvoiceExpiry = 24 * time.Hour
)

// SettlementServiceImpl implements ports.SettlementService. It is the state
// machine moving a transaction from creation to a terminal state, with every
// money movement gated by a balance check against current persisted state.
type SettlementServiceImpl struct {
	txRepo     ports.TransactionRepository
	walletRepo ports.WalletRepository
	gateway    ports.LightningGateway
	publisher  ports.Publisher
	transactor ports.Transactor
	db         ports.Querier
	payTimeout time.Duration
	log        zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl. payTimeout zero
// selects the default bound.
func NewSettlementService(
	txRepo ports.TransactionRepository,
	walletRepo ports.WalletRepository,
	gateway ports.LightningGateway,
	publisher ports.Publisher,
	transactor ports.Transactor,
	db ports.Querier,
	payTimeout time.Duration,
	log zerolog.Logger,
) *SettlementServiceImpl {
	if payTimeout <= 0 {
		payTimeout = DefaultPayTimeout
	}
	return &SettlementServiceImpl{
		txRepo:     txRepo,
		walletRepo: walletRepo,
		gateway:    gateway,
		publisher:  publisher,
		transactor: transactor,
		db:         db,
		payTimeout: payTimeout,
		log:        log,
	}
}

// Receive requests a new invoice from the node and records the awaiting
// transaction. No funds move until the invoice is paid.
func (s *SettlementServiceImpl) Receive(ctx context.Context, req ports.ReceiveRequest) (*domain.Transaction, error) {
	if req.WalletID == "" {
		return nil, apperror.ErrValidation("wallet id is required")
	}
	if req.Amount < 0 {
		return nil, apperror.ErrValidation("amount must not be negative")
	}
	if req.Expiry < 0 {
		return nil, apperror.ErrValidation("expiry must be positive")
	}

	expiry := req.Expiry
	if expiry == 0 {
		expiry = DefaultInvoiceExpiry
	}

	inv, err := s.gateway.CreateInvoice(ctx, ports.CreateInvoiceParams{
		Amount:            req.Amount,
		Description:       req.Description,
		AttachDescription: req.AttachDescription,
		PrivateRouteHints: req.PrivateRouteHints,
		Expiry:            expiry,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create invoice: %w", err))
	}

	txn := &domain.Transaction{
		WalletID:       req.WalletID,
		InvoiceID:      inv.InvoiceID,
		Amount:         inv.Amount,
		PaymentRequest: inv.PaymentRequest,
		PaymentHash:    inv.PaymentHash,
		Description:    req.Description,
		CreatedAt:      time.Now().UTC(),
		ExpiresAt:      inv.ExpiresAt,
	}
	txn, err = s.txRepo.AddOrUpdateTransaction(ctx, s.db, txn)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist receive: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID).
		Str("wallet_id", txn.WalletID).
		Str("invoice_id", txn.InvoiceID).
		Int64("amount", txn.Amount).
		Msg("receive transaction created")

	return txn, nil
}

// Send pays a payment request out of a wallet. A request matching one of the
// ledger's own outstanding invoices settles internally without touching the
// network; anything else routes through the node gateway.
func (s *SettlementServiceImpl) Send(ctx context.Context, req ports.SendRequest) (*domain.Transaction, error) {
	now := time.Now().UTC()
	pr := req.PaymentRequest

	if pr.IsExpired(now) {
		return nil, apperror.ErrExpired()
	}

	amount := pr.Amount
	if amount == 0 {
		if req.ExplicitAmount == nil || *req.ExplicitAmount <= 0 {
			return nil, apperror.ErrValidation("amount is required for a zero-amount payment request")
		}
		amount = *req.ExplicitAmount
	}

	// Fail fast before any mutation.
	balance, err := s.walletRepo.GetBalance(ctx, s.db, req.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read balance: %w", err))
	}
	if balance < amount {
		return nil, apperror.ErrInsufficientBalance(balance, amount)
	}

	receive, err := s.ValidatePaymentRequest(ctx, pr.PaymentRequest)
	if err != nil {
		return nil, err
	}
	if receive != nil {
		if receive.WalletID == req.WalletID {
			return nil, apperror.ErrPaymentRequestValidation("wallet cannot pay its own invoice")
		}
		return s.sendInternal(ctx, req, receive, amount, now)
	}
	return s.sendExternal(ctx, req, amount, now)
}

// sendInternal settles payer and payee in one atomic unit, with no fee and
// no gateway involvement. Both updates commit together or not at all.
func (s *SettlementServiceImpl) sendInternal(ctx context.Context, req ports.SendRequest, receive *domain.Transaction, amount int64, now time.Time) (*domain.Transaction, error) {
	debit := -amount
	credit := amount
	zeroFee := int64(0)

	sending := &domain.Transaction{
		WalletID:       req.WalletID,
		Amount:         amount,
		AmountSettled:  &debit,
		RoutingFee:     &zeroFee,
		PaymentRequest: receive.PaymentRequest,
		PaymentHash:    receive.PaymentHash,
		Description:    req.Description,
		CreatedAt:      now,
		ExpiresAt:      receive.ExpiresAt,
		PaidAt:         &now,
	}

	var settledReceive *domain.Transaction
	err := s.transactor.RunAtomic(ctx, func(ctx context.Context, q ports.Querier) error {
		// Both checks repeat against current state inside the atomic unit;
		// the serialization guarantee is what stops concurrent double-spends.
		balance, err := s.walletRepo.GetBalance(ctx, q, req.WalletID)
		if err != nil {
			return err
		}
		if balance < amount {
			return apperror.ErrInsufficientBalance(balance, amount)
		}

		current, err := s.txRepo.GetTransaction(ctx, q, ports.TransactionFilter{ID: receive.ID})
		if err != nil {
			return err
		}
		if current == nil || current.IsPaid() || current.ExplicitStatus != nil || current.IsExpired(now) {
			return apperror.ErrPaymentRequestValidation("matching invoice is no longer payable")
		}

		if _, err := s.txRepo.AddOrUpdateTransaction(ctx, q, sending); err != nil {
			return err
		}

		current.AmountSettled = &credit
		current.RoutingFee = &zeroFee
		current.PaidAt = &now
		if err := s.txRepo.UpdateTransaction(ctx, q, current); err != nil {
			return err
		}
		settledReceive = current
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	s.publish(ctx, sending, domain.EventSettled)
	s.publish(ctx, settledReceive, domain.EventSettled)

	s.log.Info().
		Str("tx_id", sending.ID).
		Str("receive_tx_id", settledReceive.ID).
		Str("wallet_id", req.WalletID).
		Int64("amount", amount).
		Msg("payment settled internally")

	return sending, nil
}

// sendExternal dispatches the payment to the node. A provisional pending row
// carrying the full debit (amount plus fee reserve) is committed before the
// gateway call so a crash mid-flight leaves a recoverable record.
func (s *SettlementServiceImpl) sendExternal(ctx context.Context, req ports.SendRequest, amount int64, now time.Time) (*domain.Transaction, error) {
	maxFeePercent := req.MaxFeePercent
	if maxFeePercent <= 0 {
		maxFeePercent = DefaultMaxFeePercent
	}
	feeReserve := int64(float64(amount) * maxFeePercent / 100)

	pending := domain.StatusPending
	reserved := -(amount + feeReserve)
	provisional := &domain.Transaction{
		WalletID:       req.WalletID,
		Amount:         amount,
		AmountSettled:  &reserved,
		PaymentRequest: req.PaymentRequest.PaymentRequest,
		PaymentHash:    req.PaymentRequest.PaymentHash,
		Description:    req.Description,
		ExplicitStatus: &pending,
		CreatedAt:      now,
		ExpiresAt:      req.PaymentRequest.ExpiresAt,
	}

	err := s.transactor.RunAtomic(ctx, func(ctx context.Context, q ports.Querier) error {
		balance, err := s.walletRepo.GetBalance(ctx, q, req.WalletID)
		if err != nil {
			return err
		}
		if balance < amount+feeReserve {
			return apperror.ErrInsufficientBalance(balance, amount+feeReserve)
		}
		_, err = s.txRepo.AddOrUpdateTransaction(ctx, q, provisional)
		return err
	})
	if err != nil {
		return nil, asAppError(err)
	}

	var explicitAmount int64
	if req.PaymentRequest.Amount == 0 {
		explicitAmount = amount
	}

	payCtx, cancel := context.WithTimeout(ctx, s.payTimeout)
	defer cancel()

	result, err := s.gateway.PayInvoice(payCtx, provisional.PaymentRequest, explicitAmount, maxFeePercent)
	switch {
	case err == nil:
		// Re-settle with the actual routed amounts, which may differ from
		// the reserve.
		settledAt := time.Now().UTC()
		if _, err := s.Settle(ctx, provisional, result.TotalAmount-result.FeeAmount, -result.TotalAmount, result.FeeAmount, settledAt); err != nil {
			return nil, err
		}
		s.log.Info().
			Str("tx_id", provisional.ID).
			Str("wallet_id", req.WalletID).
			Int64("total", result.TotalAmount).
			Int64("fee", result.FeeAmount).
			Msg("external payment settled")
		return provisional, nil

	case errors.Is(err, ports.ErrNoRoute), errors.Is(err, ports.ErrPaymentFailed):
		// The payment was never attempted; the provisional row moved no
		// money and is removed entirely.
		if derr := s.txRepo.RemoveTransaction(ctx, s.db, provisional); derr != nil {
			s.log.Error().Err(derr).Str("tx_id", provisional.ID).Msg("failed to roll back provisional transaction")
		}
		return nil, apperror.ErrGateway(err)

	default:
		// Timeout, caller cancellation or an unknown outcome: the payment
		// may still resolve on the network. Leave the row pending for the
		// reconciliation watcher and report the transaction as in flight.
		s.log.Info().
			Err(err).
			Str("tx_id", provisional.ID).
			Str("wallet_id", req.WalletID).
			Msg("external payment still in flight, left pending for reconciliation")
		return provisional, nil
	}
}

// Settle applies the final amounts to a transaction exactly once. It returns
// false without changes when another mutator already reached a terminal state.
func (s *SettlementServiceImpl) Settle(ctx context.Context, t *domain.Transaction, amount, amountSettled int64, routingFee int64, date time.Time) (bool, error) {
	var applied bool
	var settled *domain.Transaction

	err := s.transactor.RunAtomic(ctx, func(ctx context.Context, q ports.Querier) error {
		applied = false
		current, err := s.txRepo.GetTransaction(ctx, q, ports.TransactionFilter{ID: t.ID})
		if err != nil {
			return err
		}
		if current == nil {
			return apperror.ErrNotFound("transaction")
		}
		if current.IsSettled() || isOverridden(current) {
			return nil
		}

		current.Amount = amount
		current.AmountSettled = &amountSettled
		current.RoutingFee = &routingFee
		current.PaidAt = &date
		current.ExplicitStatus = nil
		if err := s.txRepo.UpdateTransaction(ctx, q, current); err != nil {
			return err
		}
		applied = true
		settled = current
		return nil
	})
	if err != nil {
		return false, asAppError(err)
	}
	if !applied {
		return false, nil
	}

	*t = *settled
	s.publish(ctx, settled, domain.EventSettled)

	s.log.Info().
		Str("tx_id", settled.ID).
		Str("wallet_id", settled.WalletID).
		Int64("amount_settled", amountSettled).
		Int64("routing_fee", routingFee).
		Msg("transaction settled")

	return true, nil
}

// Cancel moves a transaction to the cancelled terminal state. Any reserved
// debit is released; cancellation only applies while no funds have settled.
func (s *SettlementServiceImpl) Cancel(ctx context.Context, t *domain.Transaction) (bool, error) {
	return s.override(ctx, t, domain.StatusCancelled, domain.EventCancelled)
}

// Invalidate marks a transaction the node can no longer account for. Any
// reserved debit is released.
func (s *SettlementServiceImpl) Invalidate(ctx context.Context, t *domain.Transaction) (bool, error) {
	return s.override(ctx, t, domain.StatusInvalid, domain.EventInvalidated)
}

func (s *SettlementServiceImpl) override(ctx context.Context, t *domain.Transaction, status domain.TransactionStatus, event string) (bool, error) {
	var applied bool
	var updated *domain.Transaction

	err := s.transactor.RunAtomic(ctx, func(ctx context.Context, q ports.Querier) error {
		applied = false
		current, err := s.txRepo.GetTransaction(ctx, q, ports.TransactionFilter{ID: t.ID})
		if err != nil {
			return err
		}
		if current == nil {
			return apperror.ErrNotFound("transaction")
		}
		if current.IsSettled() || isOverridden(current) {
			return nil
		}

		// The transaction never settled, so any provisional debit must not
		// count against the balance anymore.
		current.AmountSettled = nil
		current.RoutingFee = nil
		current.PaidAt = nil
		current.ExplicitStatus = &status
		if err := s.txRepo.UpdateTransaction(ctx, q, current); err != nil {
			return err
		}
		applied = true
		updated = current
		return nil
	})
	if err != nil {
		return false, asAppError(err)
	}
	if !applied {
		return false, nil
	}

	*t = *updated
	s.publish(ctx, updated, event)

	s.log.Info().
		Str("tx_id", updated.ID).
		Str("wallet_id", updated.WalletID).
		Str("status", string(status)).
		Msg("transaction state overridden")

	return true, nil
}

// ValidatePaymentRequest resolves a payment request against the ledger's own
// receives. It returns the matching transaction when it is still payable,
// nil when the request is external, and an error when the match is unusable.
func (s *SettlementServiceImpl) ValidatePaymentRequest(ctx context.Context, paymentRequest string) (*domain.Transaction, error) {
	match, err := s.txRepo.GetTransaction(ctx, s.db, ports.TransactionFilter{PaymentRequest: paymentRequest, HasInvoice: true})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup payment request: %w", err))
	}
	if match == nil {
		return nil, nil
	}

	now := time.Now().UTC()
	switch {
	case match.IsSettled():
		return nil, apperror.ErrPaymentRequestValidation("invoice is already settled")
	case match.IsPaid():
		return nil, apperror.ErrPaymentRequestValidation("invoice is already paid")
	case isOverridden(match):
		return nil, apperror.ErrPaymentRequestValidation("invoice is " + string(*match.ExplicitStatus))
	case match.IsExpired(now):
		return nil, apperror.ErrPaymentRequestValidation("invoice has expired")
	}
	return match, nil
}

func (s *SettlementServiceImpl) publish(ctx context.Context, t *domain.Transaction, event string) {
	ev := domain.NewTransactionEvent(t, event, time.Now().UTC())
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("tx_id", t.ID).Msg("failed to publish transaction event")
	}
}

// isOverridden reports whether a cancelled or invalid override blocks
// further mutation. A pending override does not: pending sends must remain
// settleable and cancellable.
func isOverridden(t *domain.Transaction) bool {
	if t.ExplicitStatus == nil {
		return false
	}
	return *t.ExplicitStatus == domain.StatusCancelled || *t.ExplicitStatus == domain.StatusInvalid
}
