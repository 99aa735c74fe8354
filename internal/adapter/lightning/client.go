package lightning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lnledger/config"
	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LightningGateway against the node's REST API.
// Authentication uses a hex-encoded macaroon header.
type Client struct {
	baseURL    string
	macaroon   string
	httpClient HTTPClient
}

// NewClient creates a gateway client from configuration.
func NewClient(cfg config.GatewayConfig, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		macaroon:   cfg.Macaroon,
		httpClient: httpClient,
	}
}

type createInvoiceRequest struct {
	AmountMsat int64  `json:"amount_msat"`
	Memo       string `json:"memo,omitempty"`
	MemoHash   bool   `json:"memo_hash,omitempty"`
	Private    bool   `json:"private,omitempty"`
	ExpirySecs int64  `json:"expiry_secs,omitempty"`
}

type createInvoiceResponse struct {
	InvoiceID      string    `json:"invoice_id"`
	PaymentRequest string    `json:"payment_request"`
	PaymentHash    string    `json:"payment_hash"`
	AmountMsat     int64     `json:"amount_msat"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// CreateInvoice requests a new invoice from the node.
func (c *Client) CreateInvoice(ctx context.Context, params ports.CreateInvoiceParams) (*ports.CreatedInvoice, error) {
	body := createInvoiceRequest{
		AmountMsat: params.Amount,
		Memo:       params.Description,
		MemoHash:   !params.AttachDescription,
		Private:    params.PrivateRouteHints,
		ExpirySecs: int64(params.Expiry / time.Second),
	}

	var resp createInvoiceResponse
	if err := c.post(ctx, "/v1/invoices", body, &resp); err != nil {
		return nil, err
	}
	return &ports.CreatedInvoice{
		InvoiceID:      resp.InvoiceID,
		PaymentRequest: resp.PaymentRequest,
		PaymentHash:    resp.PaymentHash,
		Amount:         resp.AmountMsat,
		ExpiresAt:      resp.ExpiresAt,
	}, nil
}

type payInvoiceRequest struct {
	PaymentRequest string  `json:"payment_request"`
	AmountMsat     int64   `json:"amount_msat,omitempty"`
	MaxFeePercent  float64 `json:"max_fee_percent,omitempty"`
}

type payInvoiceResponse struct {
	TotalMsat int64 `json:"total_msat"`
	FeeMsat   int64 `json:"fee_msat"`
}

// PayInvoice pays a BOLT11 request through the node. No-route and outright
// rejections are mapped onto the gateway sentinel errors.
func (c *Client) PayInvoice(ctx context.Context, paymentRequest string, amount int64, maxFeePercent float64) (*ports.PaymentResult, error) {
	body := payInvoiceRequest{
		PaymentRequest: paymentRequest,
		AmountMsat:     amount,
		MaxFeePercent:  maxFeePercent,
	}

	var resp payInvoiceResponse
	if err := c.post(ctx, "/v1/payments", body, &resp); err != nil {
		return nil, err
	}
	return &ports.PaymentResult{TotalAmount: resp.TotalMsat, FeeAmount: resp.FeeMsat}, nil
}

type invoiceStatusResponse struct {
	State              string     `json:"state"`
	AmountReceivedMsat int64      `json:"amount_received_msat"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
}

// GetInvoiceStatus queries the node for an invoice's current state.
func (c *Client) GetInvoiceStatus(ctx context.Context, invoiceID string) (*ports.InvoiceStatus, error) {
	var resp invoiceStatusResponse
	if err := c.get(ctx, "/v1/invoices/"+url.PathEscape(invoiceID), &resp); err != nil {
		return nil, err
	}
	return &ports.InvoiceStatus{
		State:          ports.InvoiceState(resp.State),
		AmountReceived: resp.AmountReceivedMsat,
		PaidAt:         resp.PaidAt,
	}, nil
}

type paymentStatusResponse struct {
	State     string    `json:"state"`
	TotalMsat int64     `json:"total_msat"`
	FeeMsat   int64     `json:"fee_msat"`
	CreatedAt time.Time `json:"created_at"`
}

// GetPaymentStatus queries the node for an outgoing payment's current state.
func (c *Client) GetPaymentStatus(ctx context.Context, paymentHash string) (*ports.PaymentStatus, error) {
	var resp paymentStatusResponse
	if err := c.get(ctx, "/v1/payments/"+url.PathEscape(paymentHash), &resp); err != nil {
		return nil, err
	}
	return &ports.PaymentStatus{
		State:       ports.PaymentState(resp.State),
		TotalAmount: resp.TotalMsat,
		FeeAmount:   resp.FeeMsat,
		CreatedAt:   resp.CreatedAt,
	}, nil
}

type decodeResponse struct {
	PaymentRequest string    `json:"payment_request"`
	PaymentHash    string    `json:"payment_hash"`
	AmountMsat     int64     `json:"amount_msat"`
	Description    string    `json:"description"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// DecodePaymentRequest asks the node to decode a BOLT11 string.
func (c *Client) DecodePaymentRequest(ctx context.Context, paymentRequest string) (*domain.DecodedPaymentRequest, error) {
	var resp decodeResponse
	if err := c.get(ctx, "/v1/payreq?pr="+url.QueryEscape(paymentRequest), &resp); err != nil {
		return nil, err
	}
	return &domain.DecodedPaymentRequest{
		PaymentRequest: resp.PaymentRequest,
		PaymentHash:    resp.PaymentHash,
		Amount:         resp.AmountMsat,
		Description:    resp.Description,
		ExpiresAt:      resp.ExpiresAt,
	}, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.macaroon != "" {
		req.Header.Set("Grpc-Metadata-Macaroon", c.macaroon)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.ErrGatewayNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapGatewayError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}

// mapGatewayError turns a structured node error into the sentinel errors the
// settlement engine distinguishes.
func mapGatewayError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var gwErr errorResponse
	if err := json.Unmarshal(raw, &gwErr); err == nil {
		switch gwErr.Code {
		case "NO_ROUTE":
			return fmt.Errorf("%w: %s", ports.ErrNoRoute, gwErr.Message)
		case "PAYMENT_FAILED":
			return fmt.Errorf("%w: %s", ports.ErrPaymentFailed, gwErr.Message)
		}
	}
	return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(raw))
}
