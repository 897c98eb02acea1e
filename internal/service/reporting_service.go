package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReportingServiceImpl implements ports.ReportingService: the vendor and
// admin read views. Summary and balance go through the cache; a cache
// outage degrades to direct store reads.
type ReportingServiceImpl struct {
	commissionRepo ports.CommissionRepository
	walletRepo     ports.WalletRepository
	txRepo         ports.WalletTransactionRepository
	cache          ports.SummaryCache
	cacheTTL       time.Duration
	log            zerolog.Logger
	now            func() time.Time
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(
	commissionRepo ports.CommissionRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.WalletTransactionRepository,
	cache ports.SummaryCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		commissionRepo: commissionRepo,
		walletRepo:     walletRepo,
		txRepo:         txRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		log:            log,
		now:            time.Now,
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// ListCommissions returns a filtered, paginated commission page. Aging
// is applied to the returned view so a stale "pending" is never shown,
// even if the nightly pass has not run yet.
func (s *ReportingServiceImpl) ListCommissions(ctx context.Context, params ports.CommissionListParams) ([]domain.Commission, int64, error) {
	params.Page, params.PageSize = normalizePage(params.Page, params.PageSize)

	items, total, err := s.commissionRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list commissions: %w", err))
	}

	now := s.now().UTC()
	for i := range items {
		items[i].ApplyLazyAging(now)
	}
	return items, total, nil
}

// GetCommissionSummary returns the vendor's per-status totals, cached.
func (s *ReportingServiceImpl) GetCommissionSummary(ctx context.Context, vendorID uuid.UUID) (*domain.CommissionSummary, error) {
	if vendorID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("vendor")
	}

	key := ports.PendingCommissionsKey(vendorID)
	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("summary cache read failed")
	} else if raw != nil {
		var summary domain.CommissionSummary
		if err := json.Unmarshal(raw, &summary); err == nil {
			return &summary, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding malformed summary cache entry")
	}

	summary, err := s.commissionRepo.GetSummary(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commission summary: %w", err))
	}

	if raw, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("summary cache write failed")
		}
	}
	return summary, nil
}

// GetWalletBalance returns the vendor's current balance, cached.
func (s *ReportingServiceImpl) GetWalletBalance(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	if vendorID == uuid.Nil {
		return decimal.Zero, apperror.ErrInvalidIdentifier("vendor")
	}

	key := ports.WalletBalanceKey(vendorID)
	if raw, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("balance cache read failed")
	} else if raw != nil {
		if balance, err := decimal.NewFromString(string(raw)); err == nil {
			return balance, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding malformed balance cache entry")
	}

	wallet, err := s.walletRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return decimal.Zero, apperror.ErrWalletNotFound()
	}

	if err := s.cache.Set(ctx, key, []byte(wallet.Balance.String()), s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("balance cache write failed")
	}
	return wallet.Balance, nil
}

// ListWalletTransactions returns the vendor's transaction log, newest
// first.
func (s *ReportingServiceImpl) ListWalletTransactions(ctx context.Context, vendorID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	if vendorID == uuid.Nil {
		return nil, 0, apperror.ErrInvalidIdentifier("vendor")
	}
	page, pageSize = normalizePage(page, pageSize)

	wallet, err := s.walletRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, 0, apperror.ErrWalletNotFound()
	}

	items, total, err := s.txRepo.ListByWallet(ctx, wallet.ID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list wallet transactions: %w", err))
	}
	return items, total, nil
}
