package domain

import (
	"time"
)

// TransactionStatus represents the lifecycle state of a ledger transaction.
type TransactionStatus string

const (
	// Non-terminal states.
	StatusUnpaid  TransactionStatus = "unpaid"  // receive awaiting payment
	StatusPending TransactionStatus = "pending" // send dispatched to the node, outcome unknown
	StatusPaid    TransactionStatus = "paid"    // settled amount recorded, timestamp not yet applied

	// Terminal states.
	StatusSettled   TransactionStatus = "settled"
	StatusExpired   TransactionStatus = "expired"
	StatusCancelled TransactionStatus = "cancelled"
	StatusInvalid   TransactionStatus = "invalid"
)

// Transaction is a single ledger entry belonging to a wallet. Amounts are in
// millisatoshis. AmountSettled is signed: positive for funds received into the
// wallet, negative for funds paid out (fees included).
type Transaction struct {
	ID             string             `json:"id"`
	WalletID       string             `json:"wallet_id"`
	InvoiceID      string             `json:"invoice_id,omitempty"` // set for receives
	Amount         int64              `json:"amount"`               // requested amount, msat
	AmountSettled  *int64             `json:"amount_settled,omitempty"`
	RoutingFee     *int64             `json:"routing_fee,omitempty"`
	PaymentRequest string             `json:"payment_request"` // BOLT11, immutable once set
	PaymentHash    string             `json:"payment_hash"`
	Description    string             `json:"description"`
	ExplicitStatus *TransactionStatus `json:"explicit_status,omitempty"` // pending, cancelled or invalid
	CreatedAt      time.Time          `json:"created_at"`
	ExpiresAt      time.Time          `json:"expires_at"`
	PaidAt         *time.Time         `json:"paid_at,omitempty"`
}

// Status derives the transaction state from its stored fields. The precedence
// order is fixed: explicit override, then settlement fields, then expiry.
func (t *Transaction) Status(now time.Time) TransactionStatus {
	if t.ExplicitStatus != nil {
		return *t.ExplicitStatus
	}
	if t.AmountSettled != nil {
		if t.PaidAt == nil {
			return StatusPaid
		}
		return StatusSettled
	}
	if now.After(t.ExpiresAt) {
		return StatusExpired
	}
	return StatusUnpaid
}

// IsSettled reports whether settlement has been fully applied. Settlement is
// one-shot: once true, no mutator may touch the transaction again.
func (t *Transaction) IsSettled() bool {
	return t.AmountSettled != nil && t.PaidAt != nil
}

// IsPaid reports whether a settled amount has been recorded, even if the
// settlement timestamp is still missing.
func (t *Transaction) IsPaid() bool {
	return t.AmountSettled != nil
}

// IsExpired reports whether the payment window has closed.
func (t *Transaction) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsTerminal reports whether the transaction has reached a final state.
func (t *Transaction) IsTerminal(now time.Time) bool {
	switch t.Status(now) {
	case StatusSettled, StatusExpired, StatusCancelled, StatusInvalid:
		return true
	}
	return false
}

// IsReceive reports whether this transaction was created by an invoice request
// against the node, as opposed to an outgoing payment.
func (t *Transaction) IsReceive() bool {
	return t.InvoiceID != ""
}
