// Package ports defines the contracts between the sales core and its infrastructure:
// repositories, the product catalog, shipment notification and the unit of work.
package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// NextID reserves a fresh order identifier.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order aggregate.
	// Items and totals are never changed after Add.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items in insertion order.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
