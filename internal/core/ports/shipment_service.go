package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// ShipmentService is told about every order that has just been shipped.
type ShipmentService interface {
	// NotifyShipped records that aggregate was shipped. Implementations bound to a
	// unit of work make the notification part of the same transaction.
	NotifyShipped(ctx context.Context, aggregate *order.Order) error
}

// ShipmentNotification is a pending message about a shipped order.
type ShipmentNotification struct {
	ID        kernel.UUID
	OrderID   int64
	Payload   []byte
	CreatedAt time.Time
}

// ShipmentOutbox gives access to notifications that were recorded but not yet delivered.
type ShipmentOutbox interface {
	// PullPending returns up to limit undelivered notifications, oldest first.
	PullPending(ctx context.Context, limit int) ([]ShipmentNotification, error)

	// MarkSent flags the notification as delivered.
	MarkSent(ctx context.Context, id kernel.UUID) error
}

// NotificationPublisher delivers a notification to the outside world.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification ShipmentNotification) error
}
