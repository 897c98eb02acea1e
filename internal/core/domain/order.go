package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer paid for the order. It decides the
// settlement branch on delivery: cash means the vendor holds the money
// and owes commission; digital means the platform holds it in escrow.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentDigital        PaymentMethod = "DIGITAL"
)

// Valid reports whether the payment method is one the engine settles.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentDigital
}

// DeliveredOrder is the payload the order state machine hands over on the
// transition to delivered. The call must be safe to retry; the engine is
// idempotent on (OrderID, VendorID).
type DeliveredOrder struct {
	OrderID        uuid.UUID
	VendorID       uuid.UUID
	OrderAmount    decimal.Decimal
	PaymentMethod  PaymentMethod
	OrderReference string
	DeliveredAt    time.Time
}

// DeliveryResult reports what settlement did with a delivered order.
type DeliveryResult struct {
	Commission       *Commission     `json:"commission,omitempty"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	SellerEarnings   decimal.Decimal `json:"seller_earnings"`
	EscrowReleased   bool            `json:"escrow_released"`
	AlreadyRecorded  bool            `json:"already_recorded"`
}
