package domain

import "time"

// DecodedPaymentRequest is the decoded form of a BOLT11 invoice string,
// produced by the node gateway. Amount is zero for zero-amount requests.
type DecodedPaymentRequest struct {
	PaymentRequest string    `json:"payment_request"`
	PaymentHash    string    `json:"payment_hash"`
	Amount         int64     `json:"amount"` // msat
	Description    string    `json:"description"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// IsExpired reports whether the request can no longer be paid.
func (r *DecodedPaymentRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
