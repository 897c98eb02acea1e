package ports

import (
	"context"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks; balance
// mutations go through ApplyCredit/ApplyDebit, never read-then-write.
type WalletRepository interface {
	// CreateIfAbsent inserts the wallet unless one already exists for its
	// vendor. Returns true when this call created the row. Safe under
	// concurrent first-use.
	CreateIfAbsent(ctx context.Context, w *domain.Wallet) (bool, error)
	GetByVendorID(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error)
	GetByVendorIDForUpdate(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.Wallet, error)
	// ApplyCredit unconditionally increases the balance.
	ApplyCredit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) error
	// ApplyDebit decreases the balance only if balance >= amount and the
	// wallet is not locked, in a single conditional update. Returns false
	// when the condition did not hold.
	ApplyDebit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) (bool, error)
	SetLock(ctx context.Context, walletID uuid.UUID, locked bool, reason *string) error
}

// WalletTransactionRepository persists the append-only transaction log.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wtx *domain.WalletTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletTransaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error)
	// SumCompleted returns total credits and total debits over COMPLETED
	// transactions, for verifying the stored balance.
	SumCompleted(ctx context.Context, walletID uuid.UUID) (credits, debits decimal.Decimal, err error)
	// MarkReversed flags a transaction as reversed; the compensating
	// entry is created separately, the original is never edited.
	MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// CommissionListParams holds filter + pagination for listing commissions.
type CommissionListParams struct {
	VendorID *uuid.UUID
	Status   *domain.CommissionStatus
	Page     int
	PageSize int
}

// CommissionRepository defines persistence operations for commissions.
type CommissionRepository interface {
	Create(ctx context.Context, c *domain.Commission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Commission, error)
	GetByOrderAndVendor(ctx context.Context, orderID, vendorID uuid.UUID) (*domain.Commission, error)
	// GetOpenForUpdate loads a commission owned by the vendor in
	// PENDING/OVERDUE status with a row lock. Nil when absent, owned by
	// someone else, or already processed.
	GetOpenForUpdate(ctx context.Context, tx pgx.Tx, id, vendorID uuid.UUID) (*domain.Commission, error)
	// ReserveRemitKey sets the idempotency key if and only if none is set
	// yet (compare-and-swap). Returns false when a key is already there.
	ReserveRemitKey(ctx context.Context, tx pgx.Tx, id uuid.UUID, key string) (bool, error)
	// MarkRemitted finalizes a remittance: status, linked transaction,
	// history and remittance record, all inside the caller's transaction.
	MarkRemitted(ctx context.Context, tx pgx.Tx, c *domain.Commission) error
	// UpdateStatus persists a status transition already applied to c
	// (history included). Guarded by the expected previous status.
	UpdateStatus(ctx context.Context, c *domain.Commission, expected domain.CommissionStatus) (bool, error)
	List(ctx context.Context, params CommissionListParams) ([]domain.Commission, int64, error)
	GetSummary(ctx context.Context, vendorID uuid.UUID) (*domain.CommissionSummary, error)
	// ListDueForAging returns PENDING commissions whose due date passed.
	ListDueForAging(ctx context.Context, now time.Time, limit int) ([]domain.Commission, error)
	// ListOpenForReminder returns PENDING/OVERDUE commissions whose last
	// reminder is older than the cutoff (or was never sent).
	ListOpenForReminder(ctx context.Context, cutoff time.Time) ([]domain.Commission, error)
	// ListOverdueSince returns OVERDUE commissions due before the cutoff.
	ListOverdueSince(ctx context.Context, cutoff time.Time) ([]domain.Commission, error)
	RecordReminder(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
