package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorRegistry(t *testing.T) (*VendorRegistryRepo, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewVendorRegistryRepo(mock), mock
}

func TestVendorRegistry_CommissionRate_Override(t *testing.T) {
	repo, mock := newVendorRegistry(t)
	vendorID := uuid.New()
	rate := decimal.NewFromInt(10)

	mock.ExpectQuery("SELECT rate_override FROM vendor_profiles").
		WithArgs(vendorID).
		WillReturnRows(pgxmock.NewRows([]string{"rate_override"}).AddRow(&rate))

	got, ok, err := repo.CommissionRate(context.Background(), vendorID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(rate))
}

func TestVendorRegistry_CommissionRate_NoOverride(t *testing.T) {
	repo, mock := newVendorRegistry(t)
	vendorID := uuid.New()

	mock.ExpectQuery("SELECT rate_override FROM vendor_profiles").
		WithArgs(vendorID).
		WillReturnRows(pgxmock.NewRows([]string{"rate_override"}).AddRow((*decimal.Decimal)(nil)))

	_, ok, err := repo.CommissionRate(context.Background(), vendorID)
	require.NoError(t, err)
	assert.False(t, ok, "a NULL override means the platform default applies")
}

func TestVendorRegistry_CommissionRate_UnknownVendor(t *testing.T) {
	repo, mock := newVendorRegistry(t)
	vendorID := uuid.New()

	mock.ExpectQuery("SELECT rate_override FROM vendor_profiles").
		WithArgs(vendorID).
		WillReturnError(pgx.ErrNoRows)

	_, ok, err := repo.CommissionRate(context.Background(), vendorID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVendorRegistry_OpeningBalance(t *testing.T) {
	repo, mock := newVendorRegistry(t)
	vendorID := uuid.New()

	mock.ExpectQuery("SELECT opening_balance FROM vendor_profiles").
		WithArgs(vendorID).
		WillReturnRows(pgxmock.NewRows([]string{"opening_balance"}).AddRow(decimal.RequireFromString("150.00")))

	balance, err := repo.OpeningBalance(context.Background(), vendorID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("150.00")))
}

func TestVendorRegistry_OpeningBalance_UnknownVendorIsZero(t *testing.T) {
	repo, mock := newVendorRegistry(t)
	vendorID := uuid.New()

	mock.ExpectQuery("SELECT opening_balance FROM vendor_profiles").
		WithArgs(vendorID).
		WillReturnError(pgx.ErrNoRows)

	balance, err := repo.OpeningBalance(context.Background(), vendorID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
