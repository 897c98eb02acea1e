package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommissionRepo implements ports.CommissionRepository. Status history and
// remittance history live in jsonb columns; both are append-only.
type CommissionRepo struct {
	pool Pool
}

// NewCommissionRepo creates a new CommissionRepo.
func NewCommissionRepo(pool Pool) *CommissionRepo {
	return &CommissionRepo{pool: pool}
}

const commissionColumns = `id, order_id, order_reference, vendor_id, order_amount, rate, amount,
		payment_method, due_date, status, remit_key, wallet_transaction_id,
		reminder_count, last_reminder_at, history, remittances, created_at, updated_at`

func scanCommission(row pgx.Row) (*domain.Commission, error) {
	c := &domain.Commission{}
	var history, remittances []byte
	err := row.Scan(
		&c.ID, &c.OrderID, &c.OrderReference, &c.VendorID, &c.OrderAmount, &c.Rate, &c.Amount,
		&c.PaymentMethod, &c.DueDate, &c.Status, &c.RemitKey, &c.WalletTransactionID,
		&c.ReminderCount, &c.LastReminderAt, &history, &remittances, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &c.History); err != nil {
			return nil, fmt.Errorf("decode status history: %w", err)
		}
	}
	if len(remittances) > 0 {
		if err := json.Unmarshal(remittances, &c.Remittances); err != nil {
			return nil, fmt.Errorf("decode remittance history: %w", err)
		}
	}
	return c, nil
}

func marshalHistories(c *domain.Commission) (history, remittances []byte, err error) {
	history, err = json.Marshal(c.History)
	if err != nil {
		return nil, nil, fmt.Errorf("encode status history: %w", err)
	}
	remittances, err = json.Marshal(c.Remittances)
	if err != nil {
		return nil, nil, fmt.Errorf("encode remittance history: %w", err)
	}
	return history, remittances, nil
}

// Create inserts a new commission.
func (r *CommissionRepo) Create(ctx context.Context, c *domain.Commission) error {
	history, remittances, err := marshalHistories(c)
	if err != nil {
		return err
	}

	query := `INSERT INTO commissions
		(id, order_id, order_reference, vendor_id, order_amount, rate, amount,
		 payment_method, due_date, status, remit_key, wallet_transaction_id,
		 reminder_count, last_reminder_at, history, remittances, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err = r.pool.Exec(ctx, query,
		c.ID, c.OrderID, c.OrderReference, c.VendorID, c.OrderAmount, c.Rate, c.Amount,
		c.PaymentMethod, c.DueDate, c.Status, c.RemitKey, c.WalletTransactionID,
		c.ReminderCount, c.LastReminderAt, history, remittances, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commission: %w", err)
	}
	return nil
}

// GetByID fetches a commission without locking.
func (r *CommissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`

	c, err := scanCommission(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get commission by id: %w", err)
	}
	return c, nil
}

// GetByOrderAndVendor fetches the commission for an (order, vendor) pair.
// The existence check behind commission-creation idempotence.
func (r *CommissionRepo) GetByOrderAndVendor(ctx context.Context, orderID, vendorID uuid.UUID) (*domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE order_id = $1 AND vendor_id = $2`

	c, err := scanCommission(r.pool.QueryRow(ctx, query, orderID, vendorID))
	if err != nil {
		return nil, fmt.Errorf("get commission by order and vendor: %w", err)
	}
	return c, nil
}

// GetOpenForUpdate loads an open commission owned by the vendor with a row
// lock. MUST be called within a transaction.
func (r *CommissionRepo) GetOpenForUpdate(ctx context.Context, tx pgx.Tx, id, vendorID uuid.UUID) (*domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
		WHERE id = $1 AND vendor_id = $2 AND status IN ('PENDING', 'OVERDUE')
		FOR UPDATE`

	c, err := scanCommission(tx.QueryRow(ctx, query, id, vendorID))
	if err != nil {
		return nil, fmt.Errorf("get open commission for update: %w", err)
	}
	return c, nil
}

// ReserveRemitKey compare-and-swaps the idempotency key onto the row.
func (r *CommissionRepo) ReserveRemitKey(ctx context.Context, tx pgx.Tx, id uuid.UUID, key string) (bool, error) {
	query := `UPDATE commissions SET remit_key = $1, updated_at = NOW()
		WHERE id = $2 AND remit_key IS NULL`

	tag, err := tx.Exec(ctx, query, key, id)
	if err != nil {
		return false, fmt.Errorf("reserve remit key: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkRemitted persists the final remittance state of the commission
// within the caller's transaction.
func (r *CommissionRepo) MarkRemitted(ctx context.Context, tx pgx.Tx, c *domain.Commission) error {
	history, remittances, err := marshalHistories(c)
	if err != nil {
		return err
	}

	query := `UPDATE commissions
		SET status = $1, wallet_transaction_id = $2, history = $3, remittances = $4, updated_at = $5
		WHERE id = $6 AND status IN ('PENDING', 'OVERDUE')`

	tag, err := tx.Exec(ctx, query,
		c.Status, c.WalletTransactionID, history, remittances, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("mark commission remitted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("commission not open: %s", c.ID)
	}
	return nil
}

// UpdateStatus persists a transition already applied to c, guarded by the
// status the caller observed. Returns false on a lost race.
func (r *CommissionRepo) UpdateStatus(ctx context.Context, c *domain.Commission, expected domain.CommissionStatus) (bool, error) {
	history, remittances, err := marshalHistories(c)
	if err != nil {
		return false, err
	}

	query := `UPDATE commissions
		SET status = $1, history = $2, remittances = $3, updated_at = $4
		WHERE id = $5 AND status = $6`

	tag, err := r.pool.Exec(ctx, query, c.Status, history, remittances, c.UpdatedAt, c.ID, expected)
	if err != nil {
		return false, fmt.Errorf("update commission status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List returns a filtered, paginated page of commissions, newest first.
func (r *CommissionRepo) List(ctx context.Context, params ports.CommissionListParams) ([]domain.Commission, int64, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	where := ` WHERE 1=1`
	args := []any{}
	argn := 0
	if params.VendorID != nil {
		argn++
		where += fmt.Sprintf(" AND vendor_id = $%d", argn)
		args = append(args, *params.VendorID)
	}
	if params.Status != nil {
		argn++
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, *params.Status)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM commissions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count commissions: %w", err)
	}

	query := `SELECT ` + commissionColumns + ` FROM commissions` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	result, err := collectCommissions(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// GetSummary aggregates a vendor's commissions by status.
func (r *CommissionRepo) GetSummary(ctx context.Context, vendorID uuid.UUID) (*domain.CommissionSummary, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE status = 'PENDING'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0),
		COUNT(*) FILTER (WHERE status = 'OVERDUE'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'OVERDUE'), 0),
		COUNT(*) FILTER (WHERE status = 'REMITTED'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'REMITTED'), 0),
		COUNT(*) FILTER (WHERE status = 'WAIVED'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'WAIVED'), 0),
		COUNT(*) FILTER (WHERE status = 'DISPUTED'),
		COALESCE(SUM(amount) FILTER (WHERE status = 'DISPUTED'), 0)
		FROM commissions WHERE vendor_id = $1`

	s := &domain.CommissionSummary{VendorID: vendorID}
	err := r.pool.QueryRow(ctx, query, vendorID).Scan(
		&s.PendingCount, &s.PendingTotal,
		&s.OverdueCount, &s.OverdueTotal,
		&s.RemittedCount, &s.RemittedTotal,
		&s.WaivedCount, &s.WaivedTotal,
		&s.DisputedCount, &s.DisputedTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("get commission summary: %w", err)
	}
	return s, nil
}

// ListDueForAging returns pending commissions past their due date.
func (r *CommissionRepo) ListDueForAging(ctx context.Context, now time.Time, limit int) ([]domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
		WHERE status = 'PENDING' AND due_date < $1
		ORDER BY due_date ASC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list commissions due for aging: %w", err)
	}
	defer rows.Close()
	return collectCommissions(rows)
}

// ListOpenForReminder returns open commissions never reminded or last
// reminded before the cutoff.
func (r *CommissionRepo) ListOpenForReminder(ctx context.Context, cutoff time.Time) ([]domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
		WHERE status IN ('PENDING', 'OVERDUE')
		AND (last_reminder_at IS NULL OR last_reminder_at <= $1)
		ORDER BY due_date ASC`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list commissions for reminder: %w", err)
	}
	defer rows.Close()
	return collectCommissions(rows)
}

// ListOverdueSince returns overdue commissions whose due date is older
// than the cutoff (the admin severity threshold).
func (r *CommissionRepo) ListOverdueSince(ctx context.Context, cutoff time.Time) ([]domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
		WHERE status = 'OVERDUE' AND due_date < $1
		ORDER BY due_date ASC`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list severely overdue commissions: %w", err)
	}
	defer rows.Close()
	return collectCommissions(rows)
}

// RecordReminder bumps the reminder bookkeeping on the given commissions.
func (r *CommissionRepo) RecordReminder(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE commissions
		SET reminder_count = reminder_count + 1, last_reminder_at = $1, updated_at = NOW()
		WHERE id = ANY($2)`

	if _, err := r.pool.Exec(ctx, query, at, ids); err != nil {
		return fmt.Errorf("record reminders: %w", err)
	}
	return nil
}

func collectCommissions(rows pgx.Rows) ([]domain.Commission, error) {
	var result []domain.Commission
	for rows.Next() {
		c := domain.Commission{}
		var history, remittances []byte
		err := rows.Scan(
			&c.ID, &c.OrderID, &c.OrderReference, &c.VendorID, &c.OrderAmount, &c.Rate, &c.Amount,
			&c.PaymentMethod, &c.DueDate, &c.Status, &c.RemitKey, &c.WalletTransactionID,
			&c.ReminderCount, &c.LastReminderAt, &history, &remittances, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		if len(history) > 0 {
			if err := json.Unmarshal(history, &c.History); err != nil {
				return nil, fmt.Errorf("decode status history: %w", err)
			}
		}
		if len(remittances) > 0 {
			if err := json.Unmarshal(remittances, &c.Remittances); err != nil {
				return nil, fmt.Errorf("decode remittance history: %w", err)
			}
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commissions: %w", err)
	}
	return result, nil
}
