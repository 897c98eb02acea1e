package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string      `json:"error_code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Validation (VAL) ----
// Safe to retry after the caller fixes the input.

func ErrInvalidIdentifier(field string) *AppError {
	return New("VAL_001", fmt.Sprintf("Invalid %s identifier", field), http.StatusBadRequest)
}

func ErrInvalidAmount(detail string) *AppError {
	return New("VAL_002", fmt.Sprintf("Invalid amount: %s", detail), http.StatusBadRequest)
}

func ErrAmountExceedsCeiling(amount decimal.Decimal) *AppError {
	e := New("VAL_003", "Amount exceeds the single-operation ceiling", http.StatusBadRequest)
	e.Details = map[string]string{"amount": amount.String()}
	return e
}

// Validation returns a generic VAL_001-style validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Commission Ledger (CMS) ----

func ErrCommissionNotFound() *AppError {
	return New("CMS_001", "Commission not found or already processed", http.StatusNotFound)
}

func ErrDuplicateRemittance() *AppError {
	return New("CMS_002", "Remittance already handled for this commission", http.StatusConflict)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New("CMS_003", fmt.Sprintf("Cannot transition commission from %s to %s", from, to), http.StatusConflict)
}

// ---- Wallet / Ledger Store (WAL) ----

// ErrInsufficientBalance is an expected business outcome, not an engine
// fault. It carries required vs. available so the caller knows exactly
// how far short the wallet is.
func ErrInsufficientBalance(required, available decimal.Decimal) *AppError {
	e := New("WAL_001",
		fmt.Sprintf("Insufficient balance: required %s, available %s", required, available),
		http.StatusPaymentRequired)
	e.Details = map[string]string{
		"required":  required.String(),
		"available": available.String(),
	}
	return e
}

func ErrWalletLocked(reason string) *AppError {
	if reason == "" {
		reason = "wallet is locked"
	}
	return New("WAL_002", fmt.Sprintf("Wallet locked: %s", reason), http.StatusForbidden)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_003", "Wallet not found", http.StatusNotFound)
}

func ErrConcurrentModification() *AppError {
	return New("WAL_004", "Wallet modified concurrently, retry after re-reading state", http.StatusConflict)
}

func ErrTransactionNotFound() *AppError {
	return New("WAL_006", "Wallet transaction not found", http.StatusNotFound)
}

func ErrTransactionAlreadyReversed() *AppError {
	return New("WAL_007", "Wallet transaction already reversed", http.StatusConflict)
}

func ErrBalanceIntegrity(stored, calculated decimal.Decimal) *AppError {
	e := New("WAL_005", "Wallet balance does not match its transaction log", http.StatusConflict)
	e.Details = map[string]string{
		"balance":            stored.String(),
		"calculated_balance": calculated.String(),
	}
	return e
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrCircuitOpen is returned without touching storage while the breaker
// is open. retryAfterSeconds is the advertised cool-down remainder.
func ErrCircuitOpen(retryAfterSeconds int64) *AppError {
	e := New("SYS_002",
		fmt.Sprintf("Settlement temporarily unavailable, retry after %d seconds", retryAfterSeconds),
		http.StatusServiceUnavailable)
	e.Details = map[string]int64{"retry_after": retryAfterSeconds}
	return e
}

// ---- Classification helpers ----

// IsBusinessOutcome reports whether the error is an expected outcome of a
// well-formed request (validation, not-found, conflict, insufficient
// funds). Business outcomes never count as circuit-breaker failures.
func IsBusinessOutcome(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case "SYS_001":
		return false
	default:
		return true
	}
}

// Code extracts the AppError code, or "" for plain errors.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
