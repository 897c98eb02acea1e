package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// VendorRegistryRepo implements ports.VendorRegistry over the
// vendor_profiles table, a read model replicated from the marketplace's
// vendor service. Vendors without a row get platform defaults.
type VendorRegistryRepo struct {
	pool Pool
}

// NewVendorRegistryRepo creates a new VendorRegistryRepo.
func NewVendorRegistryRepo(pool Pool) *VendorRegistryRepo {
	return &VendorRegistryRepo{pool: pool}
}

// CommissionRate returns the vendor's negotiated rate override as a
// percentage. ok is false when the vendor has none.
func (r *VendorRegistryRepo) CommissionRate(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, bool, error) {
	var rate *decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT rate_override FROM vendor_profiles WHERE vendor_id = $1`,
		vendorID,
	).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("querying vendor rate override: %w", err)
	}
	if rate == nil {
		return decimal.Zero, false, nil
	}
	return *rate, true, nil
}

// OpeningBalance returns the legacy balance to seed a lazily created
// wallet with. Zero for vendors with no migrated balance.
func (r *VendorRegistryRepo) OpeningBalance(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT opening_balance FROM vendor_profiles WHERE vendor_id = $1`,
		vendorID,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("querying vendor opening balance: %w", err)
	}
	return balance, nil
}
