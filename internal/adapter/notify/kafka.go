package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Event types published to the settlement topic. Downstream consumers
// (push/email/SMS workers, the order service's escrow handler) fan out
// from here; delivery channels are outside this engine.
const (
	EventCommissionPending  = "commission.pending"
	EventCommissionReminder = "commission.reminder"
	EventCommissionRemitted = "commission.remitted"
	EventAdminOverdueAlert  = "commission.overdue_alert"
	EventEscrowRelease      = "escrow.release"
)

// Event is the wire envelope for all settlement events.
type Event struct {
	Type       string          `json:"type"`
	VendorID   uuid.UUID       `json:"vendor_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// writer is the subset of kafka.Writer the dispatcher needs.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaDispatcher implements ports.NotificationDispatcher and
// ports.EscrowReleaser over one Kafka topic. Messages are keyed by vendor
// so per-vendor ordering is preserved.
type KafkaDispatcher struct {
	writer writer
}

// NewWriter builds the kafka.Writer the dispatcher publishes through.
func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},    // Hash on key to keep per-vendor order
		RequiredAcks: kafka.RequireOne, // Wait for acknowledgement from leader
		Async:        false,
		MaxAttempts:  10,
	}
}

// NewKafkaDispatcher creates a dispatcher publishing to the given writer.
func NewKafkaDispatcher(w *kafka.Writer) *KafkaDispatcher {
	return &KafkaDispatcher{writer: w}
}

func (d *KafkaDispatcher) publish(ctx context.Context, eventType string, vendorID uuid.UUID, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	value, err := json.Marshal(Event{
		Type:       eventType,
		VendorID:   vendorID,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(vendorID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

// NotifyCommissionPending announces a newly created commission.
func (d *KafkaDispatcher) NotifyCommissionPending(ctx context.Context, c *domain.Commission) error {
	return d.publish(ctx, EventCommissionPending, c.VendorID, c)
}

// NotifyCommissionReminder sends one consolidated reminder per vendor.
func (d *KafkaDispatcher) NotifyCommissionReminder(ctx context.Context, digest ports.ReminderDigest) error {
	return d.publish(ctx, EventCommissionReminder, digest.VendorID, digest)
}

// NotifyCommissionRemitted announces a settled commission.
func (d *KafkaDispatcher) NotifyCommissionRemitted(ctx context.Context, c *domain.Commission) error {
	return d.publish(ctx, EventCommissionRemitted, c.VendorID, c)
}

// NotifyAdminOverdueCommissions escalates severely overdue vendors.
func (d *KafkaDispatcher) NotifyAdminOverdueCommissions(ctx context.Context, alerts []ports.OverdueAlert) error {
	// Admin alerts are platform-wide; keyed by the nil UUID.
	return d.publish(ctx, EventAdminOverdueAlert, uuid.Nil, alerts)
}

type escrowReleasePayload struct {
	OrderID        uuid.UUID       `json:"order_id"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	SellerEarnings decimal.Decimal `json:"seller_earnings"`
}

// ReleaseEscrow flags a digitally paid order's held funds for release.
func (d *KafkaDispatcher) ReleaseEscrow(ctx context.Context, orderID, vendorID uuid.UUID, sellerEarnings decimal.Decimal) error {
	return d.publish(ctx, EventEscrowRelease, vendorID, escrowReleasePayload{
		OrderID:        orderID,
		VendorID:       vendorID,
		SellerEarnings: sellerEarnings,
	})
}
