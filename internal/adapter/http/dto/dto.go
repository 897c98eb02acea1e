package dto

import (
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveredOrderRequest is the payload the order state machine posts on
// the transition to delivered.
type DeliveredOrderRequest struct {
	OrderID        uuid.UUID       `json:"order_id" binding:"required"`
	VendorID       uuid.UUID       `json:"vendor_id" binding:"required"`
	OrderAmount    decimal.Decimal `json:"order_amount" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	OrderReference string          `json:"order_reference" binding:"required,max=100"`
	DeliveredAt    time.Time       `json:"delivered_at" binding:"required"`
}

// RemitActionRequest is the optional body of a single remit call. Actor
// defaults to the vendor id when omitted.
type RemitActionRequest struct {
	Actor string `json:"actor,omitempty"`
}

// BulkRemitRequest is the request body for batch remittance.
type BulkRemitRequest struct {
	CommissionIDs []uuid.UUID `json:"commission_ids" binding:"required,min=1,max=50"`
	Actor         string      `json:"actor,omitempty"`
}

// CloseCommissionRequest is the body of an admin waive or dispute call.
type CloseCommissionRequest struct {
	Actor  string `json:"actor" binding:"required,max=100"`
	Reason string `json:"reason" binding:"required,max=500"`
}

// TopupRequest is the request body for a wallet top-up.
type TopupRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference string          `json:"reference" binding:"required,max=200"`
}

// ReverseTransactionRequest is the admin request to undo a wallet
// transaction with a compensating entry.
type ReverseTransactionRequest struct {
	Actor  string `json:"actor" binding:"required,max=100"`
	Reason string `json:"reason" binding:"required,max=500"`
}

// LockWalletRequest is the admin request to lock or unlock a wallet.
type LockWalletRequest struct {
	Locked bool    `json:"locked"`
	Reason *string `json:"reason,omitempty"`
}

// CommissionListResponse wraps a paginated commission list.
type CommissionListResponse struct {
	Items      []domain.Commission `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// WalletBalanceResponse is the response for a balance query.
type WalletBalanceResponse struct {
	VendorID uuid.UUID       `json:"vendor_id"`
	Balance  decimal.Decimal `json:"balance"`
}

// TransactionListResponse wraps a paginated wallet transaction list.
type TransactionListResponse struct {
	Items      []domain.WalletTransaction `json:"items"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
	TotalPages int                        `json:"total_pages"`
}

// TopupResponse is the response for a successful wallet top-up.
type TopupResponse struct {
	Wallet      *domain.Wallet            `json:"wallet"`
	Transaction *domain.WalletTransaction `json:"transaction"`
}
