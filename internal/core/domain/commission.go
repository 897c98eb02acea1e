package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionStatus is the lifecycle state of a commission.
type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "PENDING"
	CommissionOverdue  CommissionStatus = "OVERDUE"
	CommissionRemitted CommissionStatus = "REMITTED"
	CommissionWaived   CommissionStatus = "WAIVED"
	CommissionDisputed CommissionStatus = "DISPUTED"
)

// RemittanceMethod records how a commission was settled.
type RemittanceMethod string

const (
	RemitMethodWallet RemittanceMethod = "WALLET_DEBIT"
	RemitMethodWaiver RemittanceMethod = "ADMIN_WAIVER"
)

// SystemActor is the actor recorded on automatic status transitions.
const SystemActor = "system"

// StatusChange is one entry in a commission's append-only status history.
type StatusChange struct {
	From   CommissionStatus `json:"from"`
	To     CommissionStatus `json:"to"`
	Actor  string           `json:"actor"`
	Reason string           `json:"reason"`
	At     time.Time        `json:"at"`
}

// RemittanceRecord is one entry in a commission's remittance history.
type RemittanceRecord struct {
	Method        RemittanceMethod `json:"method"`
	Amount        decimal.Decimal  `json:"amount"`
	TransactionID *uuid.UUID       `json:"transaction_id,omitempty"`
	Actor         string           `json:"actor"`
	At            time.Time        `json:"at"`
}

// Commission is the platform's cut of a cash-collected order, owed by the
// vendor after delivery. One record exists per (order, vendor) pair. The
// amount is fixed at creation time from the rate in effect then; later
// rate changes never alter existing commissions.
type Commission struct {
	ID                  uuid.UUID          `json:"id"`
	OrderID             uuid.UUID          `json:"order_id"`
	OrderReference      string             `json:"order_reference"`
	VendorID            uuid.UUID          `json:"vendor_id"`
	OrderAmount         decimal.Decimal    `json:"order_amount"`
	Rate                decimal.Decimal    `json:"rate"` // percentage, e.g. 7 for 7%
	Amount              decimal.Decimal    `json:"amount"`
	PaymentMethod       PaymentMethod      `json:"payment_method"`
	DueDate             time.Time          `json:"due_date"`
	Status              CommissionStatus   `json:"status"`
	RemitKey            *string            `json:"-"`
	WalletTransactionID *uuid.UUID         `json:"wallet_transaction_id,omitempty"`
	ReminderCount       int                `json:"reminder_count"`
	LastReminderAt      *time.Time         `json:"last_reminder_at,omitempty"`
	History             []StatusChange     `json:"history"`
	Remittances         []RemittanceRecord `json:"remittances"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// ComputeCommission is the single authority for the commission amount:
// round(orderAmount * rate / 100, 2). Every caller goes through here so
// the figure never drifts between call sites.
func ComputeCommission(orderAmount, rate decimal.Decimal) decimal.Decimal {
	return orderAmount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}

// BuildRemitKey derives the idempotency key for remitting a commission.
// Deliberately deterministic (no time salt): two retries or concurrent
// attempts for the same commission collide on the same key.
func BuildRemitKey(commissionID, vendorID uuid.UUID) string {
	sum := sha256.Sum256([]byte(commissionID.String() + ":" + vendorID.String()))
	return hex.EncodeToString(sum[:])
}

// NewCommission builds a pending commission for a delivered cash order.
func NewCommission(order DeliveredOrder, rate decimal.Decimal, gracePeriod time.Duration) *Commission {
	now := time.Now().UTC()
	c := &Commission{
		ID:             uuid.New(),
		OrderID:        order.OrderID,
		OrderReference: order.OrderReference,
		VendorID:       order.VendorID,
		OrderAmount:    order.OrderAmount,
		Rate:           rate,
		Amount:         ComputeCommission(order.OrderAmount, rate),
		PaymentMethod:  order.PaymentMethod,
		DueDate:        order.DeliveredAt.Add(gracePeriod),
		Status:         CommissionPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	c.History = append(c.History, StatusChange{
		To:     CommissionPending,
		Actor:  SystemActor,
		Reason: "order delivered under cash collection",
		At:     now,
	})
	return c
}

// IsOpen reports whether the commission can still be remitted.
func (c *Commission) IsOpen() bool {
	return c.Status == CommissionPending || c.Status == CommissionOverdue
}

// IsTerminal reports whether the engine treats the status as final.
func (c *Commission) IsTerminal() bool {
	return c.Status == CommissionRemitted ||
		c.Status == CommissionWaived ||
		c.Status == CommissionDisputed
}

// Transition moves the commission to a new status and appends a history
// entry. It does not validate the edge; callers gate on IsOpen/IsTerminal.
func (c *Commission) Transition(to CommissionStatus, actor, reason string, at time.Time) {
	c.History = append(c.History, StatusChange{
		From:   c.Status,
		To:     to,
		Actor:  actor,
		Reason: reason,
		At:     at,
	})
	c.Status = to
	c.UpdatedAt = at
}

// ApplyLazyAging flips a pending commission past its due date to overdue.
// Enforced on every load so a scheduler outage never serves stale state.
// Returns true if the status changed.
func (c *Commission) ApplyLazyAging(now time.Time) bool {
	if c.Status != CommissionPending || !now.After(c.DueDate) {
		return false
	}
	c.Transition(CommissionOverdue, SystemActor, "due date passed", now)
	return true
}

// ReminderDue reports whether a reminder should be sent: never reminded,
// or last reminded at least cadence ago.
func (c *Commission) ReminderDue(now time.Time, cadence time.Duration) bool {
	if !c.IsOpen() {
		return false
	}
	if c.LastReminderAt == nil {
		return true
	}
	return now.Sub(*c.LastReminderAt) >= cadence
}

// CommissionSummary aggregates a vendor's commissions by status.
type CommissionSummary struct {
	VendorID      uuid.UUID       `json:"vendor_id"`
	PendingCount  int64           `json:"pending_count"`
	PendingTotal  decimal.Decimal `json:"pending_total"`
	OverdueCount  int64           `json:"overdue_count"`
	OverdueTotal  decimal.Decimal `json:"overdue_total"`
	RemittedCount int64           `json:"remitted_count"`
	RemittedTotal decimal.Decimal `json:"remitted_total"`
	WaivedCount   int64           `json:"waived_count"`
	WaivedTotal   decimal.Decimal `json:"waived_total"`
	DisputedCount int64           `json:"disputed_count"`
	DisputedTotal decimal.Decimal `json:"disputed_total"`
}

// OwedTotal is the amount the vendor still owes the platform.
func (s *CommissionSummary) OwedTotal() decimal.Decimal {
	return s.PendingTotal.Add(s.OverdueTotal)
}
