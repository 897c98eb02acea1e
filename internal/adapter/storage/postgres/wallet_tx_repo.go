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

// WalletTransactionRepo implements ports.WalletTransactionRepository.
type WalletTransactionRepo struct {
	pool Pool
}

// NewWalletTransactionRepo creates a new WalletTransactionRepo.
func NewWalletTransactionRepo(pool Pool) *WalletTransactionRepo {
	return &WalletTransactionRepo{pool: pool}
}

const walletTxColumns = `id, wallet_id, direction, amount, balance_before, balance_after,
		reference, commission_id, order_id, status, idempotency_key, created_at`

func scanWalletTx(row pgx.Row) (*domain.WalletTransaction, error) {
	t := &domain.WalletTransaction{}
	err := row.Scan(
		&t.ID, &t.WalletID, &t.Direction, &t.Amount, &t.BalanceBefore, &t.BalanceAfter,
		&t.Reference, &t.CommissionID, &t.OrderID, &t.Status, &t.IdempotencyKey, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Create appends a transaction record within a database transaction. The
// unique index on idempotency_key rejects a second entry for the same key.
func (r *WalletTransactionRepo) Create(ctx context.Context, tx pgx.Tx, wtx *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions
		(id, wallet_id, direction, amount, balance_before, balance_after,
		 reference, commission_id, order_id, status, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		wtx.ID, wtx.WalletID, wtx.Direction, wtx.Amount, wtx.BalanceBefore, wtx.BalanceAfter,
		wtx.Reference, wtx.CommissionID, wtx.OrderID, wtx.Status, wtx.IdempotencyKey, wtx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// GetByID fetches a single transaction record.
func (r *WalletTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE id = $1`

	t, err := scanWalletTx(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet transaction: %w", err)
	}
	return t, nil
}

// GetByIdempotencyKey fetches the transaction bearing an idempotency key.
func (r *WalletTransactionRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE idempotency_key = $1`

	t, err := scanWalletTx(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		return nil, fmt.Errorf("get wallet transaction by key: %w", err)
	}
	return t, nil
}

// ListByWallet returns a page of a wallet's transactions, newest first.
func (r *WalletTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM wallet_transactions WHERE wallet_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, walletID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wallet transactions: %w", err)
	}

	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.WalletTransaction
	for rows.Next() {
		t := domain.WalletTransaction{}
		err := rows.Scan(
			&t.ID, &t.WalletID, &t.Direction, &t.Amount, &t.BalanceBefore, &t.BalanceAfter,
			&t.Reference, &t.CommissionID, &t.OrderID, &t.Status, &t.IdempotencyKey, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wallet transaction: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wallet transactions: %w", err)
	}
	return result, total, nil
}

// SumCompleted recomputes the balance components from the log.
func (r *WalletTransactionRepo) SumCompleted(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE direction = 'CREDIT'), 0),
		COALESCE(SUM(amount) FILTER (WHERE direction = 'DEBIT'), 0)
		FROM wallet_transactions
		WHERE wallet_id = $1 AND status = 'COMPLETED'`

	var credits, debits decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, walletID).Scan(&credits, &debits); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum wallet transactions: %w", err)
	}
	return credits, debits, nil
}

// MarkReversed flags a completed transaction as reversed.
func (r *WalletTransactionRepo) MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE wallet_transactions SET status = 'REVERSED' WHERE id = $1 AND status = 'COMPLETED'`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark transaction reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or not completed: %s", id)
	}
	return nil
}
