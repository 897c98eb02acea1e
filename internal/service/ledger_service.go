package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.LedgerService: one balance per
// vendor, mutated only through atomic conditional updates, with an
// append-only transaction log that can verify the counter independently.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.WalletTransactionRepository
	registry   ports.VendorRegistry
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.WalletTransactionRepository,
	registry ports.VendorRegistry,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		registry:   registry,
		transactor: transactor,
		log:        log,
	}
}

// GetOrCreateWallet returns the vendor's wallet, creating it on first use.
// Creation is an upsert: two concurrent first-users race on the unique
// vendor index and both end up with the same row. A non-zero legacy
// balance is recorded as an opening credit so the transaction log always
// explains the counter.
func (s *LedgerServiceImpl) GetOrCreateWallet(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error) {
	if vendorID == uuid.Nil {
		return nil, apperror.ErrInvalidIdentifier("vendor")
	}

	existing, err := s.walletRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	opening, err := s.registry.OpeningBalance(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve opening balance: %w", err))
	}
	if opening.IsNegative() {
		return nil, apperror.ErrInvalidAmount("legacy balance is negative")
	}

	wallet := domain.NewWallet(vendorID, opening)
	created, err := s.walletRepo.CreateIfAbsent(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	if !created {
		// Lost the creation race; the winner's row is authoritative.
		wallet, err = s.walletRepo.GetByVendorID(ctx, vendorID)
		if err != nil || wallet == nil {
			return nil, apperror.InternalError(fmt.Errorf("reload wallet after race: %w", err))
		}
		return wallet, nil
	}

	if opening.IsPositive() {
		if err := s.recordOpeningCredit(ctx, wallet, opening); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("vendor_id", vendorID.String()).
		Str("opening_balance", opening.String()).
		Msg("wallet created")

	return wallet, nil
}

func (s *LedgerServiceImpl) recordOpeningCredit(ctx context.Context, wallet *domain.Wallet, opening decimal.Decimal) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wtx := &domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		Direction:     domain.DirectionCredit,
		Amount:        opening,
		BalanceBefore: decimal.Zero,
		BalanceAfter:  opening,
		Reference:     "legacy balance migration",
		Status:        domain.WalletTxCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, wtx); err != nil {
		return apperror.InternalError(fmt.Errorf("record opening credit: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit opening credit: %w", err))
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount("must be greater than zero")
	}
	if amount.GreaterThan(domain.MaxOperationAmount) {
		return apperror.ErrAmountExceedsCeiling(amount)
	}
	return nil
}

// Credit increases the vendor's balance and appends the audit record,
// both inside one database transaction.
func (s *LedgerServiceImpl) Credit(ctx context.Context, req ports.LedgerEntryRequest) (*domain.Wallet, *domain.WalletTransaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, nil, err
	}

	wallet, err := s.GetOrCreateWallet(ctx, req.VendorID)
	if err != nil {
		return nil, nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Re-read under lock for a stable before/after snapshot.
	wallet, err = s.walletRepo.GetByVendorIDForUpdate(ctx, dbTx, req.VendorID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrWalletNotFound()
	}

	now := time.Now().UTC()
	wtx := &domain.WalletTransaction{
		ID:             uuid.New(),
		WalletID:       wallet.ID,
		Direction:      domain.DirectionCredit,
		Amount:         req.Amount,
		BalanceBefore:  wallet.Balance,
		BalanceAfter:   wallet.Balance.Add(req.Amount),
		Reference:      req.Reference,
		CommissionID:   req.CommissionID,
		OrderID:        req.OrderID,
		Status:         domain.WalletTxCompleted,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
	}
	if err := s.txRepo.Create(ctx, dbTx, wtx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create credit transaction: %w", err))
	}
	if err := s.walletRepo.ApplyCredit(ctx, dbTx, wallet.ID, req.Amount); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("apply credit: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit credit: %w", err))
	}

	wallet.Balance = wtx.BalanceAfter
	wallet.LastActivityAt = now

	s.log.Info().
		Str("vendor_id", req.VendorID.String()).
		Str("amount", req.Amount.String()).
		Str("balance", wallet.Balance.String()).
		Msg("wallet credited")

	return wallet, wtx, nil
}

// Debit decreases the vendor's balance only if it covers the amount,
// enforced by a single conditional update, never read-then-write. A
// locked wallet rejects the debit regardless of balance. Insufficient
// balance is an expected outcome, reported with required vs. available.
func (s *LedgerServiceImpl) Debit(ctx context.Context, req ports.LedgerEntryRequest) (*domain.Wallet, *domain.WalletTransaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, nil, err
	}
	if req.VendorID == uuid.Nil {
		return nil, nil, apperror.ErrInvalidIdentifier("vendor")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByVendorIDForUpdate(ctx, dbTx, req.VendorID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrWalletNotFound()
	}
	if wallet.Locked {
		reason := ""
		if wallet.LockReason != nil {
			reason = *wallet.LockReason
		}
		return nil, nil, apperror.ErrWalletLocked(reason)
	}
	if wallet.Balance.LessThan(req.Amount) {
		return nil, nil, apperror.ErrInsufficientBalance(req.Amount, wallet.Balance)
	}

	now := time.Now().UTC()
	wtx := &domain.WalletTransaction{
		ID:             uuid.New(),
		WalletID:       wallet.ID,
		Direction:      domain.DirectionDebit,
		Amount:         req.Amount,
		BalanceBefore:  wallet.Balance,
		BalanceAfter:   wallet.Balance.Sub(req.Amount),
		Reference:      req.Reference,
		CommissionID:   req.CommissionID,
		OrderID:        req.OrderID,
		Status:         domain.WalletTxCompleted,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
	}
	// Log record first, decrement second: the log always has the entry
	// when the decrement is audited.
	if err := s.txRepo.Create(ctx, dbTx, wtx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create debit transaction: %w", err))
	}

	applied, err := s.walletRepo.ApplyDebit(ctx, dbTx, wallet.ID, req.Amount)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("apply debit: %w", err))
	}
	if !applied {
		return nil, nil, apperror.ErrConcurrentModification()
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit debit: %w", err))
	}

	wallet.Balance = wtx.BalanceAfter
	wallet.LastActivityAt = now

	s.log.Info().
		Str("vendor_id", req.VendorID.String()).
		Str("amount", req.Amount.String()).
		Str("balance", wallet.Balance.String()).
		Msg("wallet debited")

	return wallet, wtx, nil
}

// Reverse undoes a completed transaction with a compensating entry in the
// opposite direction and flags the original as reversed, all in one
// database transaction. The original record is never edited beyond its
// status. Reversing a credit is a debit and follows the debit rules: the
// wallet must be unlocked and cover the amount.
func (s *LedgerServiceImpl) Reverse(ctx context.Context, vendorID, transactionID uuid.UUID, actor, reason string) (*domain.Wallet, *domain.WalletTransaction, error) {
	if vendorID == uuid.Nil {
		return nil, nil, apperror.ErrInvalidIdentifier("vendor")
	}
	if transactionID == uuid.Nil {
		return nil, nil, apperror.ErrInvalidIdentifier("transaction")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByVendorIDForUpdate(ctx, dbTx, vendorID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrWalletNotFound()
	}

	original, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if original == nil || original.WalletID != wallet.ID {
		return nil, nil, apperror.ErrTransactionNotFound()
	}
	if original.Status != domain.WalletTxCompleted {
		return nil, nil, apperror.ErrTransactionAlreadyReversed()
	}

	direction := domain.DirectionCredit
	balanceAfter := wallet.Balance.Add(original.Amount)
	if original.Direction == domain.DirectionCredit {
		if wallet.Locked {
			lockReason := ""
			if wallet.LockReason != nil {
				lockReason = *wallet.LockReason
			}
			return nil, nil, apperror.ErrWalletLocked(lockReason)
		}
		if wallet.Balance.LessThan(original.Amount) {
			return nil, nil, apperror.ErrInsufficientBalance(original.Amount, wallet.Balance)
		}
		direction = domain.DirectionDebit
		balanceAfter = wallet.Balance.Sub(original.Amount)
	}

	now := time.Now().UTC()
	// Both sides of a reversal carry the reversed status so the pair
	// cancels out of the completed-only balance recomputation.
	wtx := &domain.WalletTransaction{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		Direction:     direction,
		Amount:        original.Amount,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  balanceAfter,
		Reference:     fmt.Sprintf("reversal of %s by %s: %s", original.ID, actor, reason),
		CommissionID:  original.CommissionID,
		OrderID:       original.OrderID,
		Status:        domain.WalletTxReversed,
		CreatedAt:     now,
	}
	if err := s.txRepo.Create(ctx, dbTx, wtx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create reversal transaction: %w", err))
	}

	if direction == domain.DirectionDebit {
		applied, err := s.walletRepo.ApplyDebit(ctx, dbTx, wallet.ID, original.Amount)
		if err != nil {
			return nil, nil, apperror.InternalError(fmt.Errorf("apply reversal debit: %w", err))
		}
		if !applied {
			return nil, nil, apperror.ErrConcurrentModification()
		}
	} else {
		if err := s.walletRepo.ApplyCredit(ctx, dbTx, wallet.ID, original.Amount); err != nil {
			return nil, nil, apperror.InternalError(fmt.Errorf("apply reversal credit: %w", err))
		}
	}

	if err := s.txRepo.MarkReversed(ctx, dbTx, original.ID); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("mark transaction reversed: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit reversal: %w", err))
	}

	wallet.Balance = balanceAfter
	wallet.LastActivityAt = now

	s.log.Info().
		Str("vendor_id", vendorID.String()).
		Str("transaction_id", transactionID.String()).
		Str("amount", original.Amount.String()).
		Str("actor", actor).
		Msg("wallet transaction reversed")

	return wallet, wtx, nil
}

// VerifyBalanceIntegrity recomputes the balance from completed
// transactions and compares it with the stored counter. Discrepancies are
// reported and logged, never silently repaired.
func (s *LedgerServiceImpl) VerifyBalanceIntegrity(ctx context.Context, vendorID uuid.UUID) (*domain.IntegrityReport, error) {
	wallet, err := s.walletRepo.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	credits, debits, err := s.txRepo.SumCompleted(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum transactions: %w", err))
	}

	calculated := credits.Sub(debits)
	discrepancy := wallet.Balance.Sub(calculated)
	report := &domain.IntegrityReport{
		VendorID:          vendorID,
		Balance:           wallet.Balance,
		CalculatedBalance: calculated,
		Discrepancy:       discrepancy,
		Consistent:        discrepancy.Abs().LessThanOrEqual(domain.IntegrityTolerance),
	}

	if !report.Consistent {
		s.log.Warn().
			Str("vendor_id", vendorID.String()).
			Str("balance", wallet.Balance.String()).
			Str("calculated_balance", calculated.String()).
			Str("discrepancy", discrepancy.String()).
			Msg("wallet balance does not match transaction log")
	}

	return report, nil
}
