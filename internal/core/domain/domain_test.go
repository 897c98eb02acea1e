package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCommission(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"standard rate", "1000", "7", "70"},
		{"rounds half up", "333.33", "7.5", "25"},
		{"small order", "9.99", "7", "0.7"},
		{"zero rate", "1000", "0", "0"},
		{"vendor override", "250", "12.5", "31.25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			rate := decimal.RequireFromString(tc.rate)
			got := ComputeCommission(amount, rate)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestBuildRemitKey_Deterministic(t *testing.T) {
	commissionID := uuid.New()
	vendorID := uuid.New()

	k1 := BuildRemitKey(commissionID, vendorID)
	k2 := BuildRemitKey(commissionID, vendorID)
	assert.Equal(t, k1, k2, "same inputs must collide on the same key")
	assert.Len(t, k1, 64)

	other := BuildRemitKey(uuid.New(), vendorID)
	assert.NotEqual(t, k1, other)
}

func newTestOrder(method PaymentMethod) DeliveredOrder {
	return DeliveredOrder{
		OrderID:        uuid.New(),
		VendorID:       uuid.New(),
		OrderAmount:    decimal.NewFromInt(1000),
		PaymentMethod:  method,
		OrderReference: "ORD-2024-0001",
		DeliveredAt:    time.Now().UTC(),
	}
}

func TestNewCommission(t *testing.T) {
	order := newTestOrder(PaymentCashOnDelivery)
	grace := 7 * 24 * time.Hour

	c := NewCommission(order, decimal.NewFromInt(7), grace)

	assert.Equal(t, CommissionPending, c.Status)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, order.DeliveredAt.Add(grace), c.DueDate)
	require.Len(t, c.History, 1)
	assert.Equal(t, CommissionPending, c.History[0].To)
	assert.Equal(t, SystemActor, c.History[0].Actor)
}

func TestCommission_ApplyLazyAging(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending past due becomes overdue", func(t *testing.T) {
		c := NewCommission(newTestOrder(PaymentCashOnDelivery), decimal.NewFromInt(7), time.Hour)
		aged := c.ApplyLazyAging(now.Add(48 * time.Hour))
		assert.True(t, aged)
		assert.Equal(t, CommissionOverdue, c.Status)
		assert.Equal(t, SystemActor, c.History[len(c.History)-1].Actor)
	})

	t.Run("pending before due is untouched", func(t *testing.T) {
		c := NewCommission(newTestOrder(PaymentCashOnDelivery), decimal.NewFromInt(7), 72*time.Hour)
		assert.False(t, c.ApplyLazyAging(now))
		assert.Equal(t, CommissionPending, c.Status)
	})

	t.Run("never ages past terminal states", func(t *testing.T) {
		for _, status := range []CommissionStatus{CommissionRemitted, CommissionWaived, CommissionDisputed} {
			c := NewCommission(newTestOrder(PaymentCashOnDelivery), decimal.NewFromInt(7), time.Hour)
			c.Status = status
			assert.False(t, c.ApplyLazyAging(now.Add(48*time.Hour)), "status %s", status)
			assert.Equal(t, status, c.Status)
		}
	})
}

func TestCommission_ReminderDue(t *testing.T) {
	now := time.Now().UTC()
	cadence := 72 * time.Hour

	c := NewCommission(newTestOrder(PaymentCashOnDelivery), decimal.NewFromInt(7), time.Hour)
	assert.True(t, c.ReminderDue(now, cadence), "never reminded")

	recent := now.Add(-24 * time.Hour)
	c.LastReminderAt = &recent
	assert.False(t, c.ReminderDue(now, cadence))

	stale := now.Add(-96 * time.Hour)
	c.LastReminderAt = &stale
	assert.True(t, c.ReminderDue(now, cadence))

	c.Status = CommissionRemitted
	assert.False(t, c.ReminderDue(now, cadence), "terminal commissions get no reminders")
}

func TestCommission_Transition_History(t *testing.T) {
	c := NewCommission(newTestOrder(PaymentCashOnDelivery), decimal.NewFromInt(7), time.Hour)
	at := time.Now().UTC()

	c.Transition(CommissionWaived, "admin:ops", "goodwill gesture", at)

	assert.Equal(t, CommissionWaived, c.Status)
	require.Len(t, c.History, 2)
	last := c.History[1]
	assert.Equal(t, CommissionPending, last.From)
	assert.Equal(t, CommissionWaived, last.To)
	assert.Equal(t, "admin:ops", last.Actor)
}

func TestWalletTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(70)

	credit := &WalletTransaction{Direction: DirectionCredit, Amount: amount}
	debit := &WalletTransaction{Direction: DirectionDebit, Amount: amount}

	assert.True(t, credit.SignedAmount().Equal(amount))
	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
}
