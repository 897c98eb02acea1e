package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxOperationAmount is the sanity ceiling for a single credit or debit.
// Anything larger is treated as corrupted input, not a real money movement.
var MaxOperationAmount = decimal.NewFromInt(1_000_000)

// IntegrityTolerance is the largest stored-vs-recomputed balance gap that
// is attributed to rounding rather than reported as a discrepancy.
var IntegrityTolerance = decimal.RequireFromString("0.01")

// Wallet holds a single vendor's balance. Created lazily on first ledger
// operation, never deleted. The balance is mutated only through atomic
// conditional updates; a locked wallet rejects all debits.
type Wallet struct {
	ID             uuid.UUID       `json:"id"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	Balance        decimal.Decimal `json:"balance"`
	Locked         bool            `json:"locked"`
	LockReason     *string         `json:"lock_reason,omitempty"`
	LastActivityAt time.Time       `json:"last_activity_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewWallet builds a wallet seeded with an opening balance (zero for new
// vendors, the legacy balance for migrated ones).
func NewWallet(vendorID uuid.UUID, openingBalance decimal.Decimal) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:             uuid.New(),
		VendorID:       vendorID,
		Balance:        openingBalance,
		LastActivityAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TransactionDirection is the signed direction of a wallet transaction.
type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "CREDIT"
	DirectionDebit  TransactionDirection = "DEBIT"
)

// WalletTransactionStatus is the lifecycle state of a ledger entry.
// Entries are never edited; a correction marks the original REVERSED and
// appends a new compensating entry.
type WalletTransactionStatus string

const (
	WalletTxCompleted WalletTransactionStatus = "COMPLETED"
	WalletTxReversed  WalletTransactionStatus = "REVERSED"
)

// WalletTransaction is an immutable audit record of one balance mutation.
// BalanceBefore/BalanceAfter snapshot the wallet around the operation so
// the log can verify the mutable counter independently.
type WalletTransaction struct {
	ID             uuid.UUID               `json:"id"`
	WalletID       uuid.UUID               `json:"wallet_id"`
	Direction      TransactionDirection    `json:"direction"`
	Amount         decimal.Decimal         `json:"amount"`
	BalanceBefore  decimal.Decimal         `json:"balance_before"`
	BalanceAfter   decimal.Decimal         `json:"balance_after"`
	Reference      string                  `json:"reference"`
	CommissionID   *uuid.UUID              `json:"commission_id,omitempty"`
	OrderID        *uuid.UUID              `json:"order_id,omitempty"`
	Status         WalletTransactionStatus `json:"status"`
	IdempotencyKey *string                 `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// SignedAmount returns the amount with the direction applied: positive for
// credits, negative for debits.
func (t *WalletTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IntegrityReport compares the stored wallet counter against the balance
// recomputed from completed transactions.
type IntegrityReport struct {
	VendorID          uuid.UUID       `json:"vendor_id"`
	Balance           decimal.Decimal `json:"balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Discrepancy       decimal.Decimal `json:"discrepancy"`
	Consistent        bool            `json:"consistent"`
}
