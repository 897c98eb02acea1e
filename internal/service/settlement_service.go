package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettlementServiceImpl implements ports.SettlementService. All write
// paths go through the circuit breaker; only infrastructure errors count
// as breaker failures, expected business outcomes (insufficient funds,
// not found, conflicts) do not.
type SettlementServiceImpl struct {
	commissionRepo ports.CommissionRepository
	walletRepo     ports.WalletRepository
	txRepo         ports.WalletTransactionRepository
	ledger         ports.LedgerService
	registry       ports.VendorRegistry
	transactor     ports.DBTransactor
	breaker        *CircuitBreaker
	dispatcher     ports.NotificationDispatcher
	escrow         ports.EscrowReleaser
	cache          ports.SummaryCache
	cfg            config.SettlementConfig
	log            zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	commissionRepo ports.CommissionRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.WalletTransactionRepository,
	ledger ports.LedgerService,
	registry ports.VendorRegistry,
	transactor ports.DBTransactor,
	breaker *CircuitBreaker,
	dispatcher ports.NotificationDispatcher,
	escrow ports.EscrowReleaser,
	cache ports.SummaryCache,
	cfg config.SettlementConfig,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		commissionRepo: commissionRepo,
		walletRepo:     walletRepo,
		txRepo:         txRepo,
		ledger:         ledger,
		registry:       registry,
		transactor:     transactor,
		breaker:        breaker,
		dispatcher:     dispatcher,
		escrow:         escrow,
		cache:          cache,
		cfg:            cfg,
		log:            log,
	}
}

// observe feeds the breaker with the outcome of a protected call. A
// business outcome proves the store is healthy, so it counts as success.
func (s *SettlementServiceImpl) observe(err error) {
	if err == nil || apperror.IsBusinessOutcome(err) {
		s.breaker.RecordSuccess()
		return
	}
	s.breaker.RecordFailure()
}

// invalidateVendorViews drops the vendor's cached read views. Best
// effort: a cache outage is logged, never surfaced.
func (s *SettlementServiceImpl) invalidateVendorViews(ctx context.Context, vendorID uuid.UUID) {
	err := s.cache.Delete(ctx,
		ports.PendingCommissionsKey(vendorID),
		ports.WalletBalanceKey(vendorID),
	)
	if err != nil {
		s.log.Warn().Err(err).
			Str("vendor_id", vendorID.String()).
			Msg("cache invalidation failed")
	}
}

// resolveRate returns the vendor's commission rate override, or the
// platform default when none is set.
func (s *SettlementServiceImpl) resolveRate(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	rate, ok, err := s.registry.CommissionRate(ctx, vendorID)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("resolve commission rate: %w", err))
	}
	if !ok {
		return decimal.NewFromFloat(s.cfg.DefaultRatePercent), nil
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, apperror.ErrInvalidAmount("commission rate outside [0, 100]")
	}
	return rate, nil
}

// RecordDelivery handles the order state machine's delivered transition.
// Cash orders produce a pending commission owed by the vendor; digital
// orders release the escrowed seller earnings instead. Idempotent on
// (order, vendor): a retry finds the existing commission and reports it.
func (s *SettlementServiceImpl) RecordDelivery(ctx context.Context, order domain.DeliveredOrder) (*domain.DeliveryResult, error) {
	if order.OrderID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("order")
	}
	if order.VendorID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("vendor")
	}
	if !order.OrderAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount("order amount must be greater than zero")
	}
	if !order.PaymentMethod.Valid() {
		return nil, apperror.ErrInvalidAmount(fmt.Sprintf("unknown payment method %q", order.PaymentMethod))
	}
	if err := s.breaker.Allow(); err != nil {
		return nil, err
	}

	result, err := s.recordDelivery(ctx, order)
	s.observe(err)
	return result, err
}

func (s *SettlementServiceImpl) recordDelivery(ctx context.Context, order domain.DeliveredOrder) (*domain.DeliveryResult, error) {
	rate, err := s.resolveRate(ctx, order.VendorID)
	if err != nil {
		return nil, err
	}
	commissionAmount := domain.ComputeCommission(order.OrderAmount, rate)
	sellerEarnings := order.OrderAmount.Sub(commissionAmount)

	if order.PaymentMethod == domain.PaymentDigital {
		// The platform already holds the money; commission is withheld
		// at source and the remainder is flagged for release. The flag
		// is this branch's only side effect, so a failed publish fails
		// the call and the order machine retries the transition.
		if err := s.escrow.ReleaseEscrow(ctx, order.OrderID, order.VendorID, sellerEarnings); err != nil {
			s.log.Error().Err(err).
				Str("order_id", order.OrderID.String()).
				Msg("escrow release publish failed")
			return nil, apperror.InternalError(fmt.Errorf("publish escrow release: %w", err))
		}
		return &domain.DeliveryResult{
			CommissionAmount: commissionAmount,
			SellerEarnings:   sellerEarnings,
			EscrowReleased:   true,
		}, nil
	}

	existing, err := s.commissionRepo.GetByOrderAndVendor(ctx, order.OrderID, order.VendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing commission: %w", err))
	}
	if existing != nil {
		return &domain.DeliveryResult{
			Commission:       existing,
			CommissionAmount: existing.Amount,
			SellerEarnings:   existing.OrderAmount.Sub(existing.Amount),
			AlreadyRecorded:  true,
		}, nil
	}

	// The wallet exists before the first commission so remittance never
	// has to create one mid-flight.
	if _, err := s.ledger.GetOrCreateWallet(ctx, order.VendorID); err != nil {
		return nil, err
	}

	c := domain.NewCommission(order, rate, s.cfg.GracePeriod())
	if err := s.commissionRepo.Create(ctx, c); err != nil {
		// Two delivery retries can race past the existence check; the
		// unique (order, vendor) index decides, and the loser reloads.
		raced, lookupErr := s.commissionRepo.GetByOrderAndVendor(ctx, order.OrderID, order.VendorID)
		if lookupErr == nil && raced != nil {
			return &domain.DeliveryResult{
				Commission:       raced,
				CommissionAmount: raced.Amount,
				SellerEarnings:   raced.OrderAmount.Sub(raced.Amount),
				AlreadyRecorded:  true,
			}, nil
		}
		return nil, apperror.InternalError(fmt.Errorf("create commission: %w", err))
	}

	s.invalidateVendorViews(ctx, order.VendorID)
	if err := s.dispatcher.NotifyCommissionPending(ctx, c); err != nil {
		s.log.Warn().Err(err).
			Str("commission_id", c.ID.String()).
			Msg("pending notification publish failed")
	}

	s.log.Info().
		Str("commission_id", c.ID.String()).
		Str("order_id", order.OrderID.String()).
		Str("vendor_id", order.VendorID.String()).
		Str("amount", c.Amount.String()).
		Time("due_date", c.DueDate).
		Msg("commission recorded")

	return &domain.DeliveryResult{
		Commission:       c,
		CommissionAmount: c.Amount,
		SellerEarnings:   sellerEarnings,
	}, nil
}

// Remit settles one commission from the vendor's wallet. The whole flow
// runs in a single database transaction: row locks on the commission and
// wallet, a compare-and-swap on the remittance key, the conditional
// balance decrement, the audit entry and the status flip all commit or
// roll back together.
func (s *SettlementServiceImpl) Remit(ctx context.Context, req ports.RemitRequest) (*ports.RemitResult, error) {
	if req.CommissionID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("commission")
	}
	if req.VendorID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("vendor")
	}
	if err := s.breaker.Allow(); err != nil {
		return nil, err
	}

	result, err := s.remit(ctx, req)
	s.observe(err)
	return result, err
}

func (s *SettlementServiceImpl) remit(ctx context.Context, req ports.RemitRequest) (*ports.RemitResult, error) {
	remitKey := domain.BuildRemitKey(req.CommissionID, req.VendorID)

	// A completed transaction carrying the key is the terminal duplicate
	// signal, checked before any lock is taken.
	prior, err := s.txRepo.GetByIdempotencyKey(ctx, remitKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency lookup: %w", err))
	}
	if prior != nil {
		return nil, apperror.ErrDuplicateRemittance()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	c, err := s.commissionRepo.GetOpenForUpdate(ctx, dbTx, req.CommissionID, req.VendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock commission: %w", err))
	}
	if c == nil {
		// A concurrent remit may have committed between the pre-check
		// and the row lock. A settled key means duplicate, not missing.
		settled, lookupErr := s.txRepo.GetByIdempotencyKey(ctx, remitKey)
		if lookupErr == nil && settled != nil {
			return nil, apperror.ErrDuplicateRemittance()
		}
		return nil, apperror.ErrCommissionNotFound()
	}

	now := time.Now().UTC()
	c.ApplyLazyAging(now)

	reserved, err := s.commissionRepo.ReserveRemitKey(ctx, dbTx, c.ID, remitKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve remit key: %w", err))
	}
	if !reserved {
		return nil, apperror.ErrDuplicateRemittance()
	}
	c.RemitKey = &remitKey

	wallet, err := s.walletRepo.GetByVendorIDForUpdate(ctx, dbTx, req.VendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	if wallet.Locked {
		reason := ""
		if wallet.LockReason != nil {
			reason = *wallet.LockReason
		}
		return nil, apperror.ErrWalletLocked(reason)
	}
	if wallet.Balance.LessThan(c.Amount) {
		return nil, apperror.ErrInsufficientBalance(c.Amount, wallet.Balance)
	}

	// The stored counter alone is not trusted to authorize a debit: the
	// transaction log must independently account for the amount too.
	credits, debits, err := s.txRepo.SumCompleted(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("recompute balance: %w", err))
	}
	if calculated := credits.Sub(debits); calculated.LessThan(c.Amount) {
		s.log.Error().
			Str("wallet_id", wallet.ID.String()).
			Str("vendor_id", req.VendorID.String()).
			Str("balance", wallet.Balance.String()).
			Str("calculated_balance", calculated.String()).
			Msg("stored balance not backed by transaction log, remittance blocked")
		return nil, apperror.ErrBalanceIntegrity(wallet.Balance, calculated)
	}

	wtx := &domain.WalletTransaction{
		ID:             uuid.New(),
		WalletID:       wallet.ID,
		Direction:      domain.DirectionDebit,
		Amount:         c.Amount,
		BalanceBefore:  wallet.Balance,
		BalanceAfter:   wallet.Balance.Sub(c.Amount),
		Reference:      fmt.Sprintf("commission remittance for order %s", c.OrderReference),
		CommissionID:   &c.ID,
		OrderID:        &c.OrderID,
		Status:         domain.WalletTxCompleted,
		IdempotencyKey: &remitKey,
		CreatedAt:      now,
	}
	if err := s.txRepo.Create(ctx, dbTx, wtx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create debit transaction: %w", err))
	}

	applied, err := s.walletRepo.ApplyDebit(ctx, dbTx, wallet.ID, c.Amount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("apply debit: %w", err))
	}
	if !applied {
		return nil, apperror.ErrConcurrentModification()
	}

	c.Transition(domain.CommissionRemitted, req.ActorID, "remitted from wallet balance", now)
	c.WalletTransactionID = &wtx.ID
	c.Remittances = append(c.Remittances, domain.RemittanceRecord{
		Method:        domain.RemitMethodWallet,
		Amount:        c.Amount,
		TransactionID: &wtx.ID,
		Actor:         req.ActorID,
		At:            now,
	})
	if err := s.commissionRepo.MarkRemitted(ctx, dbTx, c); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark remitted: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit remittance: %w", err))
	}

	s.invalidateVendorViews(ctx, req.VendorID)
	if err := s.dispatcher.NotifyCommissionRemitted(ctx, c); err != nil {
		s.log.Warn().Err(err).
			Str("commission_id", c.ID.String()).
			Msg("remitted notification publish failed")
	}

	s.log.Info().
		Str("commission_id", c.ID.String()).
		Str("vendor_id", req.VendorID.String()).
		Str("amount", c.Amount.String()).
		Str("new_balance", wtx.BalanceAfter.String()).
		Str("actor", req.ActorID).
		Msg("commission remitted")

	return &ports.RemitResult{
		Commission:  c,
		Transaction: wtx,
		NewBalance:  wtx.BalanceAfter,
	}, nil
}

// RemitMany settles commissions one by one and reports per-item
// outcomes. There is no cross-commission atomicity: earlier successes
// stay committed when a later item fails.
func (s *SettlementServiceImpl) RemitMany(ctx context.Context, vendorID uuid.UUID, actorID string, commissionIDs []uuid.UUID) []ports.RemitOutcome {
	outcomes := make([]ports.RemitOutcome, 0, len(commissionIDs))
	for _, id := range commissionIDs {
		_, err := s.Remit(ctx, ports.RemitRequest{
			CommissionID: id,
			VendorID:     vendorID,
			ActorID:      actorID,
		})
		outcome := ports.RemitOutcome{CommissionID: id, Remitted: err == nil}
		if err != nil {
			outcome.ErrorCode = apperror.Code(err)
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				outcome.Error = appErr.Message
			} else {
				outcome.Error = err.Error()
			}
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Waive cancels an open commission by admin decision. No money moves; a
// waiver record and history entry document who and why.
func (s *SettlementServiceImpl) Waive(ctx context.Context, commissionID uuid.UUID, actor, reason string) (*domain.Commission, error) {
	return s.close(ctx, commissionID, domain.CommissionWaived, actor, reason)
}

// Dispute freezes an open commission pending manual resolution. Disputed
// is terminal for the engine; resolution happens out of band.
func (s *SettlementServiceImpl) Dispute(ctx context.Context, commissionID uuid.UUID, actor, reason string) (*domain.Commission, error) {
	return s.close(ctx, commissionID, domain.CommissionDisputed, actor, reason)
}

func (s *SettlementServiceImpl) close(ctx context.Context, commissionID uuid.UUID, to domain.CommissionStatus, actor, reason string) (*domain.Commission, error) {
	if commissionID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("commission")
	}
	if actor == "" {
		return nil, apperror.Validation("actor is required")
	}
	if reason == "" {
		return nil, apperror.Validation("reason is required")
	}

	c, err := s.commissionRepo.GetByID(ctx, commissionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get commission: %w", err))
	}
	if c == nil {
		return nil, apperror.ErrCommissionNotFound()
	}

	now := time.Now().UTC()
	stored := c.Status
	c.ApplyLazyAging(now)
	if !c.IsOpen() {
		return nil, apperror.ErrInvalidStatusTransition(string(c.Status), string(to))
	}

	c.Transition(to, actor, reason, now)
	if to == domain.CommissionWaived {
		c.Remittances = append(c.Remittances, domain.RemittanceRecord{
			Method: domain.RemitMethodWaiver,
			Amount: c.Amount,
			Actor:  actor,
			At:     now,
		})
	}

	// Guarded by the status the row had when loaded: a concurrent
	// remittance or waiver wins and this attempt reports the conflict.
	ok, err := s.commissionRepo.UpdateStatus(ctx, c, stored)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update commission status: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvalidStatusTransition(string(stored), string(to))
	}

	s.invalidateVendorViews(ctx, c.VendorID)

	s.log.Info().
		Str("commission_id", c.ID.String()).
		Str("vendor_id", c.VendorID.String()).
		Str("status", string(to)).
		Str("actor", actor).
		Str("reason", reason).
		Msg("commission closed by admin")

	return c, nil
}

// ResetBreaker closes the circuit breaker immediately.
func (s *SettlementServiceImpl) ResetBreaker() {
	s.breaker.Reset()
	s.log.Warn().Msg("circuit breaker manually reset")
}

// BreakerState exposes the breaker's current state for health reporting.
func (s *SettlementServiceImpl) BreakerState() BreakerState {
	return s.breaker.State()
}
