package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletRepo(t *testing.T) (*WalletRepo, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewWalletRepo(mock), mock
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "vendor_id", "balance", "locked", "lock_reason",
		"last_activity_at", "created_at", "updated_at",
	}).AddRow(
		w.ID, w.VendorID, w.Balance, w.Locked, w.LockReason,
		w.LastActivityAt, w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletRepo_CreateIfAbsent(t *testing.T) {
	repo, mock := newWalletRepo(t)
	w := domain.NewWallet(uuid.New(), decimal.Zero)

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.ID, w.VendorID, pgxmock.AnyArg(), w.Locked, w.LockReason,
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := repo.CreateIfAbsent(context.Background(), w)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_CreateIfAbsent_ConflictIsNotAnError(t *testing.T) {
	repo, mock := newWalletRepo(t)
	w := domain.NewWallet(uuid.New(), decimal.Zero)

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.CreateIfAbsent(context.Background(), w)
	require.NoError(t, err)
	assert.False(t, created, "a concurrent winner leaves nothing to insert")
}

func TestWalletRepo_GetByVendorID(t *testing.T) {
	repo, mock := newWalletRepo(t)
	vendorID := uuid.New()
	w := &domain.Wallet{
		ID:             uuid.New(),
		VendorID:       vendorID,
		Balance:        decimal.RequireFromString("100.00"),
		LastActivityAt: time.Now().UTC(),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	mock.ExpectQuery("FROM wallets WHERE vendor_id").
		WithArgs(vendorID).
		WillReturnRows(walletRow(w))

	got, err := repo.GetByVendorID(context.Background(), vendorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, w.ID, got.ID)
	assert.True(t, got.Balance.Equal(w.Balance))
}

func TestWalletRepo_GetByVendorID_AbsentIsNilNotError(t *testing.T) {
	repo, mock := newWalletRepo(t)
	vendorID := uuid.New()

	mock.ExpectQuery("FROM wallets WHERE vendor_id").
		WithArgs(vendorID).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByVendorID(context.Background(), vendorID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWalletRepo_GetByVendorIDForUpdate(t *testing.T) {
	repo, mock := newWalletRepo(t)
	vendorID := uuid.New()
	w := &domain.Wallet{
		ID:             uuid.New(),
		VendorID:       vendorID,
		Balance:        decimal.RequireFromString("55.00"),
		LastActivityAt: time.Now().UTC(),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(vendorID).
		WillReturnRows(walletRow(w))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByVendorIDForUpdate(context.Background(), tx, vendorID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
}

func TestWalletRepo_ApplyDebit(t *testing.T) {
	repo, mock := newWalletRepo(t)
	walletID := uuid.New()
	amount := decimal.RequireFromString("60.00")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WithArgs(pgxmock.AnyArg(), walletID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	applied, err := repo.ApplyDebit(context.Background(), tx, walletID, amount)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestWalletRepo_ApplyDebit_ConditionNotMet(t *testing.T) {
	repo, mock := newWalletRepo(t)
	walletID := uuid.New()

	mock.ExpectBegin()
	// Insufficient balance or a locked wallet: zero rows, no error.
	mock.ExpectExec("UPDATE wallets").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	applied, err := repo.ApplyDebit(context.Background(), tx, walletID, decimal.RequireFromString("60.00"))
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestWalletRepo_ApplyCredit_MissingWalletFails(t *testing.T) {
	repo, mock := newWalletRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.ApplyCredit(context.Background(), tx, uuid.New(), decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestWalletRepo_SetLock(t *testing.T) {
	repo, mock := newWalletRepo(t)
	walletID := uuid.New()
	reason := "fraud review"

	mock.ExpectExec("UPDATE wallets SET locked").
		WithArgs(true, &reason, walletID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetLock(context.Background(), walletID, true, &reason)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
