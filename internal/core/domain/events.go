package domain

import "time"

// Event names broadcast on the change notification feed.
const (
	EventSettled     = "transaction-settled"
	EventCancelled   = "transaction-cancelled"
	EventInvalidated = "transaction-invalidated"
)

// TransactionEvent is the payload published once per terminal-state
// transition. Delivery is best-effort broadcast with no replay guarantee.
type TransactionEvent struct {
	TransactionID string            `json:"transaction_id"`
	InvoiceID     string            `json:"invoice_id,omitempty"`
	WalletID      string            `json:"wallet_id"`
	Status        TransactionStatus `json:"status"`
	IsPaid        bool              `json:"is_paid"`
	IsExpired     bool              `json:"is_expired"`
	Event         string            `json:"event"`
}

// NewTransactionEvent builds the feed payload for a transaction transition.
func NewTransactionEvent(t *Transaction, event string, now time.Time) TransactionEvent {
	return TransactionEvent{
		TransactionID: t.ID,
		InvoiceID:     t.InvoiceID,
		WalletID:      t.WalletID,
		Status:        t.Status(now),
		IsPaid:        t.IsPaid(),
		IsExpired:     t.IsExpired(now),
		Event:         event,
	}
}
