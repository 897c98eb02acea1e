package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, vendor_id, balance, locked, lock_reason, last_activity_at, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.VendorID, &w.Balance, &w.Locked,
		&w.LockReason, &w.LastActivityAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// CreateIfAbsent inserts the wallet unless the vendor already has one.
// ON CONFLICT DO NOTHING on the vendor_id unique index makes concurrent
// first-use safe without read-then-write.
func (r *WalletRepo) CreateIfAbsent(ctx context.Context, w *domain.Wallet) (bool, error) {
	query := `INSERT INTO wallets (id, vendor_id, balance, locked, lock_reason, last_activity_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (vendor_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		w.ID, w.VendorID, w.Balance, w.Locked,
		w.LockReason, w.LastActivityAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert wallet: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByVendorID fetches a wallet by vendor (non-locking read).
func (r *WalletRepo) GetByVendorID(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE vendor_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		return nil, fmt.Errorf("get wallet by vendor id: %w", err)
	}
	return w, nil
}

// GetByVendorIDForUpdate fetches a wallet by vendor with pessimistic
// locking. MUST be called within a transaction.
func (r *WalletRepo) GetByVendorIDForUpdate(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE vendor_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, vendorID))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// ApplyCredit increases the balance within a transaction.
func (r *WalletRepo) ApplyCredit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE wallets
		SET balance = balance + $1, last_activity_at = NOW(), updated_at = NOW()
		WHERE id = $2`

	tag, err := tx.Exec(ctx, query, amount, walletID)
	if err != nil {
		return fmt.Errorf("apply credit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// ApplyDebit decreases the balance in a single conditional update:
// balance >= amount AND NOT locked. The store guarantees exactly one of
// two racing debits wins the condition.
func (r *WalletRepo) ApplyDebit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) (bool, error) {
	query := `UPDATE wallets
		SET balance = balance - $1, last_activity_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND balance >= $1 AND NOT locked`

	tag, err := tx.Exec(ctx, query, amount, walletID)
	if err != nil {
		return false, fmt.Errorf("apply debit: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetLock freezes or unfreezes all debits on a wallet.
func (r *WalletRepo) SetLock(ctx context.Context, walletID uuid.UUID, locked bool, reason *string) error {
	query := `UPDATE wallets SET locked = $1, lock_reason = $2, updated_at = NOW() WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, locked, reason, walletID)
	if err != nil {
		return fmt.Errorf("set wallet lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}
