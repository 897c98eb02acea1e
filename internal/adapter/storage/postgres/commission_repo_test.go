package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommissionRepo(t *testing.T) (*CommissionRepo, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCommissionRepo(mock), mock
}

func commissionColumnsList() []string {
	return []string{
		"id", "order_id", "order_reference", "vendor_id", "order_amount", "rate", "amount",
		"payment_method", "due_date", "status", "remit_key", "wallet_transaction_id",
		"reminder_count", "last_reminder_at", "history", "remittances", "created_at", "updated_at",
	}
}

func sampleCommission() *domain.Commission {
	order := domain.DeliveredOrder{
		OrderID:        uuid.New(),
		VendorID:       uuid.New(),
		OrderAmount:    decimal.RequireFromString("1000.00"),
		PaymentMethod:  domain.PaymentCashOnDelivery,
		OrderReference: "ORD-7",
		DeliveredAt:    time.Now().UTC(),
	}
	return domain.NewCommission(order, decimal.NewFromInt(7), 7*24*time.Hour)
}

func commissionRow(t *testing.T, c *domain.Commission) *pgxmock.Rows {
	history, err := json.Marshal(c.History)
	require.NoError(t, err)
	remittances, err := json.Marshal(c.Remittances)
	require.NoError(t, err)
	return pgxmock.NewRows(commissionColumnsList()).AddRow(
		c.ID, c.OrderID, c.OrderReference, c.VendorID, c.OrderAmount, c.Rate, c.Amount,
		c.PaymentMethod, c.DueDate, c.Status, c.RemitKey, c.WalletTransactionID,
		c.ReminderCount, c.LastReminderAt, history, remittances, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCommissionRepo_Create(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	c := sampleCommission()

	mock.ExpectExec("INSERT INTO commissions").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommissionRepo_GetByID_RoundTripsHistories(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	c := sampleCommission()

	mock.ExpectQuery("FROM commissions WHERE id").
		WithArgs(c.ID).
		WillReturnRows(commissionRow(t, c))

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)
	require.Len(t, got.History, 1)
	assert.Equal(t, domain.CommissionPending, got.History[0].To)
	assert.Equal(t, domain.SystemActor, got.History[0].Actor)
}

func TestCommissionRepo_GetOpenForUpdate_ProcessedIsNil(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	id, vendorID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(id, vendorID).
		WillReturnError(pgx.ErrNoRows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetOpenForUpdate(context.Background(), tx, id, vendorID)
	require.NoError(t, err)
	assert.Nil(t, got, "remitted, waived, disputed or foreign rows never lock")
}

func TestCommissionRepo_ReserveRemitKey(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE commissions SET remit_key").
		WithArgs("key-1", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	reserved, err := repo.ReserveRemitKey(context.Background(), tx, id, "key-1")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestCommissionRepo_ReserveRemitKey_AlreadySet(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE commissions SET remit_key").
		WithArgs("key-1", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	reserved, err := repo.ReserveRemitKey(context.Background(), tx, id, "key-1")
	require.NoError(t, err)
	assert.False(t, reserved, "the compare-and-swap admits exactly one winner")
}

func TestCommissionRepo_MarkRemitted_ClosedRowRejected(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	c := sampleCommission()
	c.Status = domain.CommissionRemitted

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE commissions").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkRemitted(context.Background(), tx, c)
	assert.Error(t, err)
}

func TestCommissionRepo_UpdateStatus_GuardedByExpected(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	c := sampleCommission()
	c.Transition(domain.CommissionWaived, "admin", "hardship", time.Now().UTC())

	mock.ExpectExec("UPDATE commissions").
		WithArgs(domain.CommissionWaived, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), c.ID, domain.CommissionPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.UpdateStatus(context.Background(), c, domain.CommissionPending)
	require.NoError(t, err)
	assert.False(t, ok, "a lost race reports false, not an error")
}

func TestCommissionRepo_List_FiltersAndPaginates(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	c := sampleCommission()
	vendorID := c.VendorID
	status := domain.CommissionPending

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(vendorID, status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(vendorID, status, 10, 0).
		WillReturnRows(commissionRow(t, c))

	items, total, err := repo.List(context.Background(), ports.CommissionListParams{
		VendorID: &vendorID,
		Status:   &status,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, c.ID, items[0].ID)
}

func TestCommissionRepo_GetSummary(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	vendorID := uuid.New()

	rows := pgxmock.NewRows([]string{
		"pending_count", "pending_total", "overdue_count", "overdue_total",
		"remitted_count", "remitted_total", "waived_count", "waived_total",
		"disputed_count", "disputed_total",
	}).AddRow(
		int64(2), decimal.RequireFromString("140.00"),
		int64(1), decimal.RequireFromString("70.00"),
		int64(5), decimal.RequireFromString("350.00"),
		int64(0), decimal.Zero,
		int64(0), decimal.Zero,
	)
	mock.ExpectQuery("FROM commissions WHERE vendor_id").
		WithArgs(vendorID).
		WillReturnRows(rows)

	s, err := repo.GetSummary(context.Background(), vendorID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.PendingCount)
	assert.True(t, s.OwedTotal().Equal(decimal.RequireFromString("210.00")))
}

func TestCommissionRepo_ListDueForAging(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	c := sampleCommission()
	now := time.Now().UTC()

	mock.ExpectQuery("due_date").
		WithArgs(now, 500).
		WillReturnRows(commissionRow(t, c))

	items, err := repo.ListDueForAging(context.Background(), now, 500)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCommissionRepo_RecordReminder_EmptyIsNoop(t *testing.T) {
	repo, _ := newCommissionRepo(t)

	// No expectation registered: any query would fail the test.
	require.NoError(t, repo.RecordReminder(context.Background(), nil, time.Now().UTC()))
}

func TestCommissionRepo_RecordReminder(t *testing.T) {
	repo, mock := newCommissionRepo(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE commissions").
		WithArgs(at, ids).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	require.NoError(t, repo.RecordReminder(context.Background(), ids, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
