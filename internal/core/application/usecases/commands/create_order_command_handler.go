package commands

import (
	"context"
	"fmt"
	"strings"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Every product name is resolved before the order is built, so an unknown product leaves
// nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	cmd, _ := NewCreateOrderCommand([]OrderLine{{ProductName: "shoes", Quantity: 2}})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrUnknownProduct) {
//	    // report the missing products to the caller
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the catalog to price items.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.ProductCatalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle resolves the requested products, builds a Created order with one item per line
// and stores it. It returns the identifier of the new order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	names := cmd.ProductNames()
	products, err := h.catalog.FindByNames(ctx, names)
	if err != nil {
		return 0, err
	}

	var missing []string
	for _, name := range names {
		if _, ok := products[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, strings.Join(missing, ", "))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(id)
	if err != nil {
		return 0, err
	}

	for _, line := range cmd.Lines() {
		if err = aggregate.AddItem(products[line.ProductName], line.Quantity); err != nil {
			return 0, err
		}
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
