package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/core/ports/mocks"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingFixture struct {
	commissionRepo *mocks.MockCommissionRepository
	walletRepo     *mocks.MockWalletRepository
	txRepo         *mocks.MockWalletTransactionRepository
	cache          *mocks.MockSummaryCache
	svc            *ReportingServiceImpl
}

func newReportingFixture(t *testing.T) *reportingFixture {
	ctrl := gomock.NewController(t)
	f := &reportingFixture{
		commissionRepo: mocks.NewMockCommissionRepository(ctrl),
		walletRepo:     mocks.NewMockWalletRepository(ctrl),
		txRepo:         mocks.NewMockWalletTransactionRepository(ctrl),
		cache:          mocks.NewMockSummaryCache(ctrl),
	}
	f.svc = NewReportingService(f.commissionRepo, f.walletRepo, f.txRepo, f.cache, 5*time.Minute, zerolog.Nop())
	return f
}

func TestReporting_GetCommissionSummary_CacheMiss(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()
	key := ports.PendingCommissionsKey(vendorID)
	summary := &domain.CommissionSummary{
		VendorID:     vendorID,
		PendingCount: 3,
		PendingTotal: decimal.RequireFromString("210.00"),
		OverdueTotal: decimal.Zero,
	}

	f.cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	f.commissionRepo.EXPECT().GetSummary(gomock.Any(), vendorID).Return(summary, nil)
	f.cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 5*time.Minute).Return(nil)

	got, err := f.svc.GetCommissionSummary(context.Background(), vendorID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.PendingCount)
	assert.True(t, got.OwedTotal().Equal(decimal.RequireFromString("210.00")))
}

func TestReporting_GetCommissionSummary_CacheHit(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()
	cached, err := json.Marshal(&domain.CommissionSummary{
		VendorID:     vendorID,
		PendingCount: 1,
		PendingTotal: decimal.RequireFromString("70.00"),
	})
	require.NoError(t, err)

	f.cache.EXPECT().Get(gomock.Any(), ports.PendingCommissionsKey(vendorID)).Return(cached, nil)
	// No repository call on a hit.

	got, err := f.svc.GetCommissionSummary(context.Background(), vendorID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.PendingCount)
}

func TestReporting_GetCommissionSummary_CacheOutageDegrades(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	f.commissionRepo.EXPECT().GetSummary(gomock.Any(), vendorID).
		Return(&domain.CommissionSummary{VendorID: vendorID}, nil)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := f.svc.GetCommissionSummary(context.Background(), vendorID)
	assert.NoError(t, err, "cache failures never surface to the caller")
}

func TestReporting_GetWalletBalance_CacheMiss(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()
	wallet := testWallet(vendorID, "123.45")
	key := ports.WalletBalanceKey(vendorID)

	f.cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	f.walletRepo.EXPECT().GetByVendorID(gomock.Any(), vendorID).Return(wallet, nil)
	f.cache.EXPECT().Set(gomock.Any(), key, []byte("123.45"), 5*time.Minute).Return(nil)

	balance, err := f.svc.GetWalletBalance(context.Background(), vendorID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("123.45")))
}

func TestReporting_GetWalletBalance_CacheHit(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()

	f.cache.EXPECT().Get(gomock.Any(), ports.WalletBalanceKey(vendorID)).Return([]byte("88.00"), nil)

	balance, err := f.svc.GetWalletBalance(context.Background(), vendorID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("88.00")))
}

func TestReporting_GetWalletBalance_UnknownVendor(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.walletRepo.EXPECT().GetByVendorID(gomock.Any(), vendorID).Return(nil, nil)

	_, err := f.svc.GetWalletBalance(context.Background(), vendorID)
	assert.Equal(t, "WAL_003", apperror.Code(err))
}

func TestReporting_ListCommissions_AgesStalePending(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()
	stale := schedCommission(vendorID, "70.00", time.Now().UTC().Add(-48*time.Hour), domain.CommissionPending)
	fresh := schedCommission(vendorID, "30.00", time.Now().UTC().Add(48*time.Hour), domain.CommissionPending)

	f.commissionRepo.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]domain.Commission{stale, fresh}, int64(2), nil)

	items, total, err := f.svc.ListCommissions(context.Background(), ports.CommissionListParams{VendorID: &vendorID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, domain.CommissionOverdue, items[0].Status, "past-due pending is shown as overdue")
	assert.Equal(t, domain.CommissionPending, items[1].Status)
}

func TestReporting_ListCommissions_NormalizesPagination(t *testing.T) {
	f := newReportingFixture(t)

	f.commissionRepo.EXPECT().
		List(gomock.Any(), ports.CommissionListParams{Page: 1, PageSize: defaultPageSize}).
		Return(nil, int64(0), nil)

	_, _, err := f.svc.ListCommissions(context.Background(), ports.CommissionListParams{Page: -3, PageSize: 0})
	require.NoError(t, err)
}

func TestReporting_ListWalletTransactions(t *testing.T) {
	f := newReportingFixture(t)
	vendorID := uuid.New()
	wallet := testWallet(vendorID, "10.00")

	f.walletRepo.EXPECT().GetByVendorID(gomock.Any(), vendorID).Return(wallet, nil)
	f.txRepo.EXPECT().ListByWallet(gomock.Any(), wallet.ID, 1, 20).
		Return([]domain.WalletTransaction{{ID: uuid.New(), WalletID: wallet.ID}}, int64(1), nil)

	items, total, err := f.svc.ListWalletTransactions(context.Background(), vendorID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
}
