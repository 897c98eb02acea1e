package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]*domain.Wallet // by wallet id
	byOwner map[uuid.UUID]uuid.UUID      // vendor id -> wallet id
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{
		wallets: make(map[uuid.UUID]*domain.Wallet),
		byOwner: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *inMemoryWalletRepo) CreateIfAbsent(ctx context.Context, w *domain.Wallet) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byOwner[w.VendorID]; ok {
		return false, nil
	}
	cp := *w
	r.wallets[w.ID] = &cp
	r.byOwner[w.VendorID] = w.ID
	return true, nil
}

func (r *inMemoryWalletRepo) GetByVendorID(ctx context.Context, vendorID uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byOwner[vendorID]
	if !ok {
		return nil, nil
	}
	cp := *r.wallets[id]
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByVendorIDForUpdate(ctx context.Context, tx pgx.Tx, vendorID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByVendorID(ctx, vendorID)
}

func (r *inMemoryWalletRepo) ApplyCredit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	w.Balance = w.Balance.Add(amount)
	w.LastActivityAt = time.Now().UTC()
	w.UpdatedAt = w.LastActivityAt
	return nil
}

// ApplyDebit mirrors the conditional SQL update: the balance check and the
// decrement happen under one lock, which is what makes the concurrency
// tests meaningful.
func (r *inMemoryWalletRepo) ApplyDebit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return false, nil
	}
	if w.Locked || w.Balance.LessThan(amount) {
		return false, nil
	}
	w.Balance = w.Balance.Sub(amount)
	w.LastActivityAt = time.Now().UTC()
	w.UpdatedAt = w.LastActivityAt
	return true, nil
}

func (r *inMemoryWalletRepo) SetLock(ctx context.Context, walletID uuid.UUID, locked bool, reason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	w.Locked = locked
	w.LockReason = reason
	return nil
}

// --- In-Memory Wallet Transaction Repo ---

type inMemoryWalletTxRepo struct {
	mu    sync.Mutex
	txs   map[uuid.UUID]*domain.WalletTransaction
	byKey map[string]uuid.UUID
}

func newInMemoryWalletTxRepo() *inMemoryWalletTxRepo {
	return &inMemoryWalletTxRepo{
		txs:   make(map[uuid.UUID]*domain.WalletTransaction),
		byKey: make(map[string]uuid.UUID),
	}
}

func (r *inMemoryWalletTxRepo) Create(ctx context.Context, tx pgx.Tx, wtx *domain.WalletTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if wtx.IdempotencyKey != nil {
		if _, ok := r.byKey[*wtx.IdempotencyKey]; ok {
			return fmt.Errorf("duplicate idempotency key")
		}
		r.byKey[*wtx.IdempotencyKey] = wtx.ID
	}
	cp := *wtx
	r.txs[wtx.ID] = &cp
	return nil
}

func (r *inMemoryWalletTxRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryWalletTxRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	cp := *r.txs[id]
	return &cp, nil
}

func (r *inMemoryWalletTxRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.WalletTransaction
	for _, t := range r.txs {
		if t.WalletID == walletID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	total := int64(len(result))

	start := (page - 1) * pageSize
	if start >= len(result) {
		return []domain.WalletTransaction{}, total, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryWalletTxRepo) SumCompleted(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	credits, debits := decimal.Zero, decimal.Zero
	for _, t := range r.txs {
		if t.WalletID != walletID || t.Status != domain.WalletTxCompleted {
			continue
		}
		if t.Direction == domain.DirectionCredit {
			credits = credits.Add(t.Amount)
		} else {
			debits = debits.Add(t.Amount)
		}
	}
	return credits, debits, nil
}

func (r *inMemoryWalletTxRepo) MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txs[id]
	if !ok || t.Status != domain.WalletTxCompleted {
		return fmt.Errorf("transaction not reversible: %s", id)
	}
	t.Status = domain.WalletTxReversed
	return nil
}

// --- In-Memory Commission Repo ---

type inMemoryCommissionRepo struct {
	mu          sync.Mutex
	commissions map[uuid.UUID]*domain.Commission
}

func newInMemoryCommissionRepo() *inMemoryCommissionRepo {
	return &inMemoryCommissionRepo{commissions: make(map[uuid.UUID]*domain.Commission)}
}

func copyCommission(c *domain.Commission) *domain.Commission {
	cp := *c
	cp.History = append([]domain.StatusChange(nil), c.History...)
	cp.Remittances = append([]domain.RemittanceRecord(nil), c.Remittances...)
	return &cp
}

func (r *inMemoryCommissionRepo) Create(ctx context.Context, c *domain.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.commissions {
		if existing.OrderID == c.OrderID && existing.VendorID == c.VendorID {
			return fmt.Errorf("commission already exists for order %s", c.OrderID)
		}
	}
	r.commissions[c.ID] = copyCommission(c)
	return nil
}

func (r *inMemoryCommissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commissions[id]
	if !ok {
		return nil, nil
	}
	return copyCommission(c), nil
}

func (r *inMemoryCommissionRepo) GetByOrderAndVendor(ctx context.Context, orderID, vendorID uuid.UUID) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.commissions {
		if c.OrderID == orderID && c.VendorID == vendorID {
			return copyCommission(c), nil
		}
	}
	return nil, nil
}

func (r *inMemoryCommissionRepo) GetOpenForUpdate(ctx context.Context, tx pgx.Tx, id, vendorID uuid.UUID) (*domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commissions[id]
	if !ok || c.VendorID != vendorID || !c.IsOpen() {
		return nil, nil
	}
	return copyCommission(c), nil
}

// ReserveRemitKey is the compare-and-swap that decides concurrent remit
// races; the mutex plays the role of the row lock.
func (r *inMemoryCommissionRepo) ReserveRemitKey(ctx context.Context, tx pgx.Tx, id uuid.UUID, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.commissions[id]
	if !ok || c.RemitKey != nil {
		return false, nil
	}
	c.RemitKey = &key
	return true, nil
}

func (r *inMemoryCommissionRepo) MarkRemitted(ctx context.Context, tx pgx.Tx, c *domain.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.commissions[c.ID]
	if !ok || !stored.IsOpen() {
		return fmt.Errorf("commission not open: %s", c.ID)
	}
	r.commissions[c.ID] = copyCommission(c)
	return nil
}

func (r *inMemoryCommissionRepo) UpdateStatus(ctx context.Context, c *domain.Commission, expected domain.CommissionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.commissions[c.ID]
	if !ok || stored.Status != expected {
		return false, nil
	}
	r.commissions[c.ID] = copyCommission(c)
	return true, nil
}

func (r *inMemoryCommissionRepo) List(ctx context.Context, params ports.CommissionListParams) ([]domain.Commission, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Commission
	for _, c := range r.commissions {
		if params.VendorID != nil && c.VendorID != *params.VendorID {
			continue
		}
		if params.Status != nil && c.Status != *params.Status {
			continue
		}
		result = append(result, *copyCommission(c))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Commission{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryCommissionRepo) GetSummary(ctx context.Context, vendorID uuid.UUID) (*domain.CommissionSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &domain.CommissionSummary{
		VendorID:      vendorID,
		PendingTotal:  decimal.Zero,
		OverdueTotal:  decimal.Zero,
		RemittedTotal: decimal.Zero,
		WaivedTotal:   decimal.Zero,
		DisputedTotal: decimal.Zero,
	}
	for _, c := range r.commissions {
		if c.VendorID != vendorID {
			continue
		}
		switch c.Status {
		case domain.CommissionPending:
			s.PendingCount++
			s.PendingTotal = s.PendingTotal.Add(c.Amount)
		case domain.CommissionOverdue:
			s.OverdueCount++
			s.OverdueTotal = s.OverdueTotal.Add(c.Amount)
		case domain.CommissionRemitted:
			s.RemittedCount++
			s.RemittedTotal = s.RemittedTotal.Add(c.Amount)
		case domain.CommissionWaived:
			s.WaivedCount++
			s.WaivedTotal = s.WaivedTotal.Add(c.Amount)
		case domain.CommissionDisputed:
			s.DisputedCount++
			s.DisputedTotal = s.DisputedTotal.Add(c.Amount)
		}
	}
	return s, nil
}

func (r *inMemoryCommissionRepo) ListDueForAging(ctx context.Context, now time.Time, limit int) ([]domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Commission
	for _, c := range r.commissions {
		if c.Status == domain.CommissionPending && c.DueDate.Before(now) {
			result = append(result, *copyCommission(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *inMemoryCommissionRepo) ListOpenForReminder(ctx context.Context, cutoff time.Time) ([]domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Commission
	for _, c := range r.commissions {
		if !c.IsOpen() {
			continue
		}
		if c.LastReminderAt == nil || !c.LastReminderAt.After(cutoff) {
			result = append(result, *copyCommission(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	return result, nil
}

func (r *inMemoryCommissionRepo) ListOverdueSince(ctx context.Context, cutoff time.Time) ([]domain.Commission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Commission
	for _, c := range r.commissions {
		if c.Status == domain.CommissionOverdue && c.DueDate.Before(cutoff) {
			result = append(result, *copyCommission(c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	return result, nil
}

func (r *inMemoryCommissionRepo) RecordReminder(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if c, ok := r.commissions[id]; ok {
			c.ReminderCount++
			reminded := at
			c.LastReminderAt = &reminded
		}
	}
	return nil
}

// --- In-Memory Vendor Registry ---

type inMemoryVendorRegistry struct {
	mu       sync.Mutex
	rates    map[uuid.UUID]decimal.Decimal
	balances map[uuid.UUID]decimal.Decimal
}

func newInMemoryVendorRegistry() *inMemoryVendorRegistry {
	return &inMemoryVendorRegistry{
		rates:    make(map[uuid.UUID]decimal.Decimal),
		balances: make(map[uuid.UUID]decimal.Decimal),
	}
}

func (r *inMemoryVendorRegistry) setRate(vendorID uuid.UUID, rate decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates[vendorID] = rate
}

func (r *inMemoryVendorRegistry) CommissionRate(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rate, ok := r.rates[vendorID]
	return rate, ok, nil
}

func (r *inMemoryVendorRegistry) OpeningBalance(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.balances[vendorID]; ok {
		return b, nil
	}
	return decimal.Zero, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Recording Dispatcher (Kafka stand-in) ---

type recordedEvent struct {
	eventType string
	vendorID  uuid.UUID
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{}
}

func (d *recordingDispatcher) record(eventType string, vendorID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, recordedEvent{eventType: eventType, vendorID: vendorID})
}

func (d *recordingDispatcher) count(eventType string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, e := range d.events {
		if e.eventType == eventType {
			n++
		}
	}
	return n
}

func (d *recordingDispatcher) NotifyCommissionPending(ctx context.Context, c *domain.Commission) error {
	d.record("commission.pending", c.VendorID)
	return nil
}

func (d *recordingDispatcher) NotifyCommissionReminder(ctx context.Context, digest ports.ReminderDigest) error {
	d.record("commission.reminder", digest.VendorID)
	return nil
}

func (d *recordingDispatcher) NotifyCommissionRemitted(ctx context.Context, c *domain.Commission) error {
	d.record("commission.remitted", c.VendorID)
	return nil
}

func (d *recordingDispatcher) NotifyAdminOverdueCommissions(ctx context.Context, alerts []ports.OverdueAlert) error {
	d.record("commission.overdue_alert", uuid.Nil)
	return nil
}

func (d *recordingDispatcher) ReleaseEscrow(ctx context.Context, orderID, vendorID uuid.UUID, sellerEarnings decimal.Decimal) error {
	d.record("escrow.release", vendorID)
	return nil
}
