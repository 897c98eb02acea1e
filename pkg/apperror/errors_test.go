package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	e := New("CMS_001", "Commission not found or already processed", http.StatusNotFound)
	assert.Equal(t, "[CMS_001] Commission not found or already processed", e.Error())

	wrapped := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, errors.New("pool closed"))
	assert.Contains(t, wrapped.Error(), "pool closed")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := InternalError(fmt.Errorf("begin tx: %w", inner))
	assert.True(t, errors.Is(e, inner))
}

func TestErrInsufficientBalance_Details(t *testing.T) {
	e := ErrInsufficientBalance(decimal.NewFromInt(70), decimal.NewFromInt(50))

	assert.Equal(t, "WAL_001", e.Code)
	assert.Equal(t, http.StatusPaymentRequired, e.HTTPStatus)
	details, ok := e.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "70", details["required"])
	assert.Equal(t, "50", details["available"])
}

func TestErrCircuitOpen_RetryAfter(t *testing.T) {
	e := ErrCircuitOpen(42)

	assert.Equal(t, "SYS_002", e.Code)
	assert.Equal(t, http.StatusServiceUnavailable, e.HTTPStatus)
	assert.Contains(t, e.Message, "42 seconds")
	details, ok := e.Details.(map[string]int64)
	require.True(t, ok)
	assert.Equal(t, int64(42), details["retry_after"])
}

func TestIsBusinessOutcome(t *testing.T) {
	assert.True(t, IsBusinessOutcome(ErrCommissionNotFound()))
	assert.True(t, IsBusinessOutcome(ErrDuplicateRemittance()))
	assert.True(t, IsBusinessOutcome(ErrInsufficientBalance(decimal.NewFromInt(1), decimal.Zero)))
	assert.True(t, IsBusinessOutcome(ErrWalletLocked("fraud review")))

	assert.False(t, IsBusinessOutcome(InternalError(errors.New("db down"))))
	assert.False(t, IsBusinessOutcome(errors.New("plain error")))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "WAL_002", Code(ErrWalletLocked("")))
	assert.Equal(t, "", Code(errors.New("plain")))

	wrapped := fmt.Errorf("remit: %w", ErrDuplicateRemittance())
	assert.Equal(t, "CMS_002", Code(wrapped))
}
