package ports

import (
	"context"
	"errors"
	"time"

	"lnledger/internal/core/domain"
)

// Sentinel errors distinguishing gateway outcomes the settlement engine
// reacts to. Anything else is treated as an unknown infrastructure failure.
var (
	// ErrGatewayNotFound means the node no longer accounts for the invoice
	// or payment; the corresponding transaction must be invalidated.
	ErrGatewayNotFound = errors.New("gateway: not found")
	// ErrNoRoute means the payment could never be attempted.
	ErrNoRoute = errors.New("gateway: no route to destination")
	// ErrPaymentFailed means the node rejected the payment outright.
	ErrPaymentFailed = errors.New("gateway: payment failed")
)

// CreateInvoiceParams describes a new invoice request against the node.
type CreateInvoiceParams struct {
	Amount int64 // msat
	// Description is attached to the invoice directly when AttachDescription
	// is set; otherwise only its hash is committed.
	Description       string
	AttachDescription bool
	PrivateRouteHints bool
	Expiry            time.Duration
}

// CreatedInvoice is the node's answer to CreateInvoice.
type CreatedInvoice struct {
	InvoiceID      string
	PaymentRequest string
	PaymentHash    string
	Amount         int64 // msat
	ExpiresAt      time.Time
}

// PaymentResult is the node's answer to a completed PayInvoice call.
type PaymentResult struct {
	TotalAmount int64 // msat, amount plus routing fee
	FeeAmount   int64 // msat
}

// InvoiceState is the node-side state of an invoice.
type InvoiceState string

const (
	InvoiceStateOpen      InvoiceState = "open"
	InvoiceStateSettled   InvoiceState = "settled"
	InvoiceStateCancelled InvoiceState = "cancelled"
)

// InvoiceStatus is the node's view of an invoice.
type InvoiceStatus struct {
	State          InvoiceState
	AmountReceived int64 // msat
	PaidAt         *time.Time
}

// PaymentState is the node-side state of an outgoing payment.
type PaymentState string

const (
	PaymentStateComplete PaymentState = "complete"
	PaymentStateFailed   PaymentState = "failed"
	PaymentStatePending  PaymentState = "pending"
)

// PaymentStatus is the node's view of an outgoing payment.
type PaymentStatus struct {
	State       PaymentState
	TotalAmount int64 // msat
	FeeAmount   int64 // msat
	CreatedAt   time.Time
}

// LightningGateway is the node collaborator the ledger core depends on. All
// calls are potential suspension points and honor context cancellation.
type LightningGateway interface {
	CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*CreatedInvoice, error)
	// PayInvoice pays a BOLT11 request. amount is only used for zero-amount
	// requests. Returns ErrNoRoute or ErrPaymentFailed (possibly wrapped)
	// when the payment could not be attempted.
	PayInvoice(ctx context.Context, paymentRequest string, amount int64, maxFeePercent float64) (*PaymentResult, error)
	// GetInvoiceStatus returns ErrGatewayNotFound when the invoice is gone.
	GetInvoiceStatus(ctx context.Context, invoiceID string) (*InvoiceStatus, error)
	// GetPaymentStatus returns ErrGatewayNotFound when the payment is gone.
	GetPaymentStatus(ctx context.Context, paymentHash string) (*PaymentStatus, error)
	DecodePaymentRequest(ctx context.Context, paymentRequest string) (*domain.DecodedPaymentRequest, error)
}
