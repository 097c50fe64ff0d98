// Package outboxrepo records shipment notifications in the same transaction as the
// shipped order and hands them out to the relay later.
package outboxrepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/google/uuid"
)

// ShipmentNotificationDTO is one outbox row. SentAt stays NULL until the relay has
// published the notification.
type ShipmentNotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   int64      `gorm:"not null;index"`
	Payload   string     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox rows.
func (ShipmentNotificationDTO) TableName() string {
	return "shipment_notifications"
}

// ShippedOrderPayload is the JSON snapshot of a shipped order carried by a notification.
type ShippedOrderPayload struct {
	OrderID   int64                `json:"orderId"`
	Status    string               `json:"status"`
	Currency  string               `json:"currency"`
	Total     string               `json:"total"`
	Tax       string               `json:"tax"`
	Items     []ShippedItemPayload `json:"items"`
	ShippedAt time.Time            `json:"shippedAt"`
}

// ShippedItemPayload is one order line inside ShippedOrderPayload.
type ShippedItemPayload struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	TaxedAmount string `json:"taxedAmount"`
	TaxAmount   string `json:"taxAmount"`
}

func newPayload(aggregate *order.Order, shippedAt time.Time) ShippedOrderPayload {
	items := aggregate.Items()
	payloadItems := make([]ShippedItemPayload, 0, len(items))
	for _, item := range items {
		payloadItems = append(payloadItems, ShippedItemPayload{
			ProductName: item.Product().Name(),
			Quantity:    item.Quantity(),
			TaxedAmount: item.TaxedAmount().String(),
			TaxAmount:   item.TaxAmount().String(),
		})
	}

	return ShippedOrderPayload{
		OrderID:   aggregate.ID(),
		Status:    aggregate.Status().String(),
		Currency:  aggregate.Currency(),
		Total:     aggregate.Total().String(),
		Tax:       aggregate.Tax().String(),
		Items:     payloadItems,
		ShippedAt: shippedAt,
	}
}

func toNotification(dto ShipmentNotificationDTO) (ports.ShipmentNotification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ShipmentNotification{}, err
	}

	return ports.ShipmentNotification{
		ID:        id,
		OrderID:   dto.OrderID,
		Payload:   []byte(dto.Payload),
		CreatedAt: dto.CreatedAt,
	}, nil
}
