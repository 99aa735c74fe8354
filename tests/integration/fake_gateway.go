package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
)

// fakeGateway is a scriptable stand-in for the Lightning node. Invoices it
// creates start open; tests drive their node-side state transitions, and
// configure the outcome of outgoing payments before sending.
type fakeGateway struct {
	mu        sync.Mutex
	seq       int
	invoices  map[string]*ports.InvoiceStatus
	byRequest map[string]ports.CreatedInvoice
	payments  map[string]ports.PaymentStatus

	// payment outcome script
	payResult *ports.PaymentResult
	payErr    error
	// holdPayments makes PayInvoice block until the caller's context expires,
	// simulating an in-flight payment that outlives the call timeout.
	holdPayments bool
	payCalls     int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		invoices:  make(map[string]*ports.InvoiceStatus),
		byRequest: make(map[string]ports.CreatedInvoice),
		payments:  make(map[string]ports.PaymentStatus),
	}
}

func (g *fakeGateway) CreateInvoice(ctx context.Context, params ports.CreateInvoiceParams) (*ports.CreatedInvoice, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	inv := ports.CreatedInvoice{
		InvoiceID:      fmt.Sprintf("inv-%d", g.seq),
		PaymentRequest: fmt.Sprintf("lnbc-test-%d", g.seq),
		PaymentHash:    fmt.Sprintf("hash-%d", g.seq),
		Amount:         params.Amount,
		ExpiresAt:      time.Now().UTC().Add(params.Expiry),
	}
	g.invoices[inv.InvoiceID] = &ports.InvoiceStatus{State: ports.InvoiceStateOpen}
	g.byRequest[inv.PaymentRequest] = inv
	return &inv, nil
}

func (g *fakeGateway) PayInvoice(ctx context.Context, paymentRequest string, amount int64, maxFeePercent float64) (*ports.PaymentResult, error) {
	g.mu.Lock()
	g.payCalls++
	hold := g.holdPayments
	result := g.payResult
	err := g.payErr
	g.mu.Unlock()

	if hold {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	if result != nil {
		r := *result
		return &r, nil
	}
	return &ports.PaymentResult{TotalAmount: amount, FeeAmount: 0}, nil
}

func (g *fakeGateway) GetInvoiceStatus(ctx context.Context, invoiceID string) (*ports.InvoiceStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status, ok := g.invoices[invoiceID]
	if !ok {
		return nil, ports.ErrGatewayNotFound
	}
	s := *status
	return &s, nil
}

func (g *fakeGateway) GetPaymentStatus(ctx context.Context, paymentHash string) (*ports.PaymentStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status, ok := g.payments[paymentHash]
	if !ok {
		return nil, ports.ErrGatewayNotFound
	}
	return &status, nil
}

func (g *fakeGateway) DecodePaymentRequest(ctx context.Context, paymentRequest string) (*domain.DecodedPaymentRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	inv, ok := g.byRequest[paymentRequest]
	if !ok {
		return nil, fmt.Errorf("cannot decode payment request %q", paymentRequest)
	}
	return &domain.DecodedPaymentRequest{
		PaymentRequest: inv.PaymentRequest,
		PaymentHash:    inv.PaymentHash,
		Amount:         inv.Amount,
		ExpiresAt:      inv.ExpiresAt,
	}, nil
}

// settleInvoice marks a node-side invoice as paid.
func (g *fakeGateway) settleInvoice(invoiceID string, amountReceived int64, paidAt time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invoices[invoiceID] = &ports.InvoiceStatus{
		State:          ports.InvoiceStateSettled,
		AmountReceived: amountReceived,
		PaidAt:         &paidAt,
	}
}

// cancelInvoice marks a node-side invoice as cancelled.
func (g *fakeGateway) cancelInvoice(invoiceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invoices[invoiceID] = &ports.InvoiceStatus{State: ports.InvoiceStateCancelled}
}

// removeInvoice makes the node forget an invoice entirely.
func (g *fakeGateway) removeInvoice(invoiceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.invoices, invoiceID)
}

// setPayment scripts the node-side state of an outgoing payment.
func (g *fakeGateway) setPayment(paymentHash string, status ports.PaymentStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payments[paymentHash] = status
}

// setPayOutcome scripts the next PayInvoice results.
func (g *fakeGateway) setPayOutcome(result *ports.PaymentResult, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payResult = result
	g.payErr = err
}

func (g *fakeGateway) payInvoiceCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.payCalls
}
