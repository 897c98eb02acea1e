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

func newWalletTxRepo(t *testing.T) (*WalletTransactionRepo, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewWalletTransactionRepo(mock), mock
}

func walletTxRowColumns() []string {
	return []string{
		"id", "wallet_id", "direction", "amount", "balance_before", "balance_after",
		"reference", "commission_id", "order_id", "status", "idempotency_key", "created_at",
	}
}

func TestWalletTxRepo_Create(t *testing.T) {
	repo, mock := newWalletTxRepo(t)
	key := "abc123"
	wtx := &domain.WalletTransaction{
		ID:             uuid.New(),
		WalletID:       uuid.New(),
		Direction:      domain.DirectionDebit,
		Amount:         decimal.RequireFromString("70.00"),
		BalanceBefore:  decimal.RequireFromString("100.00"),
		BalanceAfter:   decimal.RequireFromString("30.00"),
		Reference:      "commission remittance for order ORD-1",
		Status:         domain.WalletTxCompleted,
		IdempotencyKey: &key,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, wtx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletTxRepo_GetByID(t *testing.T) {
	repo, mock := newWalletTxRepo(t)
	id := uuid.New()
	walletID := uuid.New()

	rows := pgxmock.NewRows(walletTxRowColumns()).AddRow(
		id, walletID, domain.DirectionCredit,
		decimal.RequireFromString("100.00"), decimal.Zero, decimal.RequireFromString("100.00"),
		"top-up", nil, nil, domain.WalletTxCompleted, nil, time.Now().UTC(),
	)
	mock.ExpectQuery("FROM wallet_transactions WHERE id =").
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, walletID, got.WalletID)
}

func TestWalletTxRepo_GetByIdempotencyKey(t *testing.T) {
	repo, mock := newWalletTxRepo(t)
	key := "deadbeef"
	id := uuid.New()
	walletID := uuid.New()

	rows := pgxmock.NewRows(walletTxRowColumns()).AddRow(
		id, walletID, domain.DirectionDebit,
		decimal.RequireFromString("70.00"), decimal.RequireFromString("100.00"), decimal.RequireFromString("30.00"),
		"remit", nil, nil, domain.WalletTxCompleted, &key, time.Now().UTC(),
	)
	mock.ExpectQuery("FROM wallet_transactions WHERE idempotency_key").
		WithArgs(key).
		WillReturnRows(rows)

	got, err := repo.GetByIdempotencyKey(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	require.NotNil(t, got.IdempotencyKey)
	assert.Equal(t, key, *got.IdempotencyKey)
}

func TestWalletTxRepo_GetByIdempotencyKey_Miss(t *testing.T) {
	repo, mock := newWalletTxRepo(t)

	mock.ExpectQuery("FROM wallet_transactions WHERE idempotency_key").
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByIdempotencyKey(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWalletTxRepo_ListByWallet(t *testing.T) {
	repo, mock := newWalletTxRepo(t)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	rows := pgxmock.NewRows(walletTxRowColumns()).
		AddRow(uuid.New(), walletID, domain.DirectionDebit,
			decimal.RequireFromString("70.00"), decimal.RequireFromString("100.00"), decimal.RequireFromString("30.00"),
			"remit", nil, nil, domain.WalletTxCompleted, nil, time.Now().UTC()).
		AddRow(uuid.New(), walletID, domain.DirectionCredit,
			decimal.RequireFromString("100.00"), decimal.Zero, decimal.RequireFromString("100.00"),
			"top-up", nil, nil, domain.WalletTxCompleted, nil, time.Now().UTC().Add(-time.Hour))
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(walletID, 20, 0).
		WillReturnRows(rows)

	items, total, err := repo.ListByWallet(context.Background(), walletID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, domain.DirectionDebit, items[0].Direction)
}

func TestWalletTxRepo_SumCompleted(t *testing.T) {
	repo, mock := newWalletTxRepo(t)
	walletID := uuid.New()

	mock.ExpectQuery("FROM wallet_transactions").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"credits", "debits"}).
			AddRow(decimal.RequireFromString("170.00"), decimal.RequireFromString("70.00")))

	credits, debits, err := repo.SumCompleted(context.Background(), walletID)
	require.NoError(t, err)
	assert.True(t, credits.Equal(decimal.RequireFromString("170.00")))
	assert.True(t, debits.Equal(decimal.RequireFromString("70.00")))
}

func TestWalletTxRepo_MarkReversed_RequiresCompleted(t *testing.T) {
	repo, mock := newWalletTxRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallet_transactions").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkReversed(context.Background(), tx, uuid.New())
	assert.Error(t, err, "reversing a non-completed transaction is rejected")
}
