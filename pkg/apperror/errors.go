package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"lnledger/internal/core/domain"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Input Validation (VAL) ----

// ErrValidation rejects caller-supplied arguments that violate a precondition.
func ErrValidation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Payment Business Logic (PAY) ----

// ErrInsufficientBalance reports a failed balance check. Amounts are carried
// in the message in whole satoshis so callers can surface it verbatim.
func ErrInsufficientBalance(balance, amount int64) *AppError {
	msg := fmt.Sprintf("Insufficient balance: %s — tried to send %s.",
		domain.FormatSats(balance), domain.FormatSats(amount))
	return New("PAY_001", msg, http.StatusPaymentRequired)
}

// ErrExpired rejects a payment request whose expiry has passed.
func ErrExpired() *AppError {
	return New("PAY_002", "Payment request has expired", http.StatusBadRequest)
}

// ErrPaymentRequestValidation rejects a payment request that is no longer
// usable (already settled, already paid, or expired).
func ErrPaymentRequestValidation(reason string) *AppError {
	return New("PAY_003", fmt.Sprintf("Payment request unusable: %s", reason), http.StatusBadRequest)
}

// ErrNotFound reports a missing entity.
func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Ledger (LED) ----

// ErrNotEmpty refuses wallet removal when transaction history exists.
func ErrNotEmpty() *AppError {
	return New("LED_001", "Wallet has transaction history and cannot be removed", http.StatusConflict)
}

// ---- Node Gateway (GW) ----

// ErrGateway wraps an outright payment rejection by the node gateway
// (no route found, generic failure). Provisional records are rolled back.
func ErrGateway(err error) *AppError {
	return Wrap("GW_001", "Lightning node rejected the payment", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
