package commands

import (
	"context"
)

// ShipOrderCommandHandler ships an approved order and notifies the shipment service.
//
// The shipment service comes from the same unit of work as the repository, so the new
// status and the notification are committed together. A refused shipment notifies nobody.
//
// Example:
//
//	handler := NewShipOrderCommandHandler(uowFactory)
//	cmd, _ := NewShipOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotReadyForShipment):
//	    // the order was not approved yet
//	case errors.Is(err, order.ErrOrderCannotBeShippedTwice):
//	    // the order is already on its way
//	}
type ShipOrderCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewShipOrderCommandHandler(uowFactory ShipmentUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, ships it, stores it and notifies exactly once.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := loadOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Ship(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.ShipmentService().NotifyShipped(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
