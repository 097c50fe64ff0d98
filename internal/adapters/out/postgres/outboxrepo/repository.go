package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentOutbox is both the ShipmentService used when shipping and the
// ShipmentOutbox drained by the relay.
type GormShipmentOutbox struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormShipmentOutbox creates an outbox writing through db.
func NewGormShipmentOutbox(db *gorm.DB) *GormShipmentOutbox {
	return &GormShipmentOutbox{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// NotifyShipped records a notification carrying a snapshot of the shipped order.
func (o *GormShipmentOutbox) NotifyShipped(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.HasStatus(order.Shipped) {
		return errs.NewValueIsInvalidError("order status " + aggregate.Status().String())
	}

	now := o.now()
	payload, err := json.Marshal(newPayload(aggregate, now))
	if err != nil {
		return err
	}

	dto := ShipmentNotificationDTO{
		ID:        kernel.NewUUID().Bytes(),
		OrderID:   aggregate.ID(),
		Payload:   string(payload),
		CreatedAt: now,
	}
	return o.db.WithContext(ctx).Create(&dto).Error
}

// PullPending locks and returns up to limit unsent notifications, oldest first.
// Rows locked by another relay are skipped.
func (o *GormShipmentOutbox) PullPending(ctx context.Context, limit int) ([]ports.ShipmentNotification, error) {
	var dtos []ShipmentNotificationDTO
	err := o.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]ports.ShipmentNotification, 0, len(dtos))
	for _, dto := range dtos {
		notification, convErr := toNotification(dto)
		if convErr != nil {
			return nil, convErr
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkSent sets the sent time of a pending notification.
func (o *GormShipmentOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	result := o.db.WithContext(ctx).
		Model(&ShipmentNotificationDTO{}).
		Where("id = ? AND sent_at IS NULL", id.Bytes()).
		Update("sent_at", o.now())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment notification", id.String())
	}

	return nil
}
