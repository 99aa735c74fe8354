package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_002", "Payment request has expired", http.StatusBadRequest),
			expected: "[PAY_002] Payment request has expired",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_004", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrExpired())

	assert.True(t, HasCode(err, "PAY_002"))
	assert.False(t, HasCode(err, "PAY_001"))
	assert.False(t, HasCode(errors.New("plain"), "PAY_002"))
	assert.False(t, HasCode(nil, "PAY_002"))
}

func TestPaymentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", ErrValidation("bad input"), "VAL_001", 400},
		{"InsufficientBalance", ErrInsufficientBalance(0, 0), "PAY_001", 402},
		{"Expired", ErrExpired(), "PAY_002", 400},
		{"PaymentRequestValidation", ErrPaymentRequestValidation("expired"), "PAY_003", 400},
		{"NotFound", ErrNotFound("transaction"), "PAY_004", 404},
		{"NotEmpty", ErrNotEmpty(), "LED_001", 409},
		{"Gateway", ErrGateway(errors.New("no route")), "GW_001", 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestErrInsufficientBalance_Message(t *testing.T) {
	err := ErrInsufficientBalance(2_000_000, 3_000_000)

	assert.Equal(t, "Insufficient balance: 2000 sats — tried to send 3000 sats.", err.Message)
}

func TestInternalError(t *testing.T) {
	inner := errors.New("boom")
	err := InternalError(inner)

	assert.Equal(t, "SYS_001", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}
