package ports

import (
	"context"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- External collaborators (consumed interfaces) ---

// VendorRegistry exposes the vendor facts settlement needs: the current
// commission-rate override and any externally tracked legacy balance to
// seed a lazily created wallet with.
type VendorRegistry interface {
	// CommissionRate returns the vendor's rate override as a percentage.
	// ok is false when the vendor has none and the platform default applies.
	CommissionRate(ctx context.Context, vendorID uuid.UUID) (rate decimal.Decimal, ok bool, err error)
	// OpeningBalance returns the legacy balance to seed a new wallet with
	// (zero for vendors with no migrated balance).
	OpeningBalance(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error)
}

// ReminderDigest is one consolidated per-vendor reminder: the most urgent
// commission plus totals, so a vendor gets one notification, not a storm.
type ReminderDigest struct {
	VendorID       uuid.UUID
	Count          int
	TotalOwed      decimal.Decimal
	MostUrgent     uuid.UUID
	MostUrgentDue  time.Time
	MostUrgentOwed decimal.Decimal
}

// OverdueAlert is the admin-facing escalation for one vendor whose
// overdue total crossed the severity threshold.
type OverdueAlert struct {
	VendorID     uuid.UUID
	OverdueCount int
	OverdueTotal decimal.Decimal
	OldestDue    time.Time
}

// NotificationDispatcher is fire-and-forget: failures are logged by the
// caller and never roll back a settlement transaction.
type NotificationDispatcher interface {
	NotifyCommissionPending(ctx context.Context, c *domain.Commission) error
	NotifyCommissionReminder(ctx context.Context, digest ReminderDigest) error
	NotifyCommissionRemitted(ctx context.Context, c *domain.Commission) error
	NotifyAdminOverdueCommissions(ctx context.Context, alerts []OverdueAlert) error
}

// EscrowReleaser flags a digitally paid order's held funds for release to
// the vendor after delivery.
type EscrowReleaser interface {
	ReleaseEscrow(ctx context.Context, orderID, vendorID uuid.UUID, sellerEarnings decimal.Decimal) error
}

// SummaryCache is the best-effort read cache for vendor-facing views.
// Unavailability degrades to direct store reads; it never blocks the engine.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Cache key builders for the vendor read views.
func PendingCommissionsKey(vendorID uuid.UUID) string {
	return "pending-commissions:" + vendorID.String()
}

func WalletBalanceKey(vendorID uuid.UUID) string {
	return "wallet-balance:" + vendorID.String()
}

// --- Service ports (business logic) ---

// LedgerEntryRequest holds validated input for a credit or debit.
type LedgerEntryRequest struct {
	VendorID       uuid.UUID
	Amount         decimal.Decimal
	Reference      string
	CommissionID   *uuid.UUID
	OrderID        *uuid.UUID
	IdempotencyKey *string
}

// LedgerService is the Ledger Store contract: one balance per vendor plus
// an append-only transaction log that can verify it.
type LedgerService interface {
	GetOrCreateWallet(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, req LedgerEntryRequest) (*domain.Wallet, *domain.WalletTransaction, error)
	Debit(ctx context.Context, req LedgerEntryRequest) (*domain.Wallet, *domain.WalletTransaction, error)
	// Reverse marks a completed transaction as reversed and applies a
	// compensating entry in the opposite direction. The original record
	// is never edited beyond its status flag.
	Reverse(ctx context.Context, vendorID, transactionID uuid.UUID, actor, reason string) (*domain.Wallet, *domain.WalletTransaction, error)
	VerifyBalanceIntegrity(ctx context.Context, vendorID uuid.UUID) (*domain.IntegrityReport, error)
}

// RemitRequest identifies one vendor-initiated remittance attempt.
type RemitRequest struct {
	CommissionID uuid.UUID
	VendorID     uuid.UUID
	ActorID      string
}

// RemitResult reports a successful remittance.
type RemitResult struct {
	Commission  *domain.Commission        `json:"commission"`
	Transaction *domain.WalletTransaction `json:"transaction"`
	NewBalance  decimal.Decimal           `json:"new_balance"`
}

// RemitOutcome is one item of a bulk remittance report. Bulk remittance
// is never all-or-nothing: earlier successes stay committed when a later
// item fails.
type RemitOutcome struct {
	CommissionID uuid.UUID `json:"commission_id"`
	Remitted     bool      `json:"remitted"`
	ErrorCode    string    `json:"error_code,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// SettlementService orchestrates commission creation on delivery and
// vendor-initiated remittance.
type SettlementService interface {
	// RecordDelivery is invoked by the order state machine exactly once,
	// synchronously, on the transition to delivered. Idempotent on retry.
	RecordDelivery(ctx context.Context, order domain.DeliveredOrder) (*domain.DeliveryResult, error)
	Remit(ctx context.Context, req RemitRequest) (*RemitResult, error)
	RemitMany(ctx context.Context, vendorID uuid.UUID, actorID string, commissionIDs []uuid.UUID) []RemitOutcome
	Waive(ctx context.Context, commissionID uuid.UUID, actor, reason string) (*domain.Commission, error)
	Dispute(ctx context.Context, commissionID uuid.UUID, actor, reason string) (*domain.Commission, error)
	// ResetBreaker is the operator escape hatch for a stuck-open breaker.
	ResetBreaker()
}

// ReportingService serves the vendor/admin read views.
type ReportingService interface {
	ListCommissions(ctx context.Context, params CommissionListParams) ([]domain.Commission, int64, error)
	GetCommissionSummary(ctx context.Context, vendorID uuid.UUID) (*domain.CommissionSummary, error)
	GetWalletBalance(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error)
	ListWalletTransactions(ctx context.Context, vendorID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error)
}
