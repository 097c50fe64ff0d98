package commands

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// ApproveOrderCommandHandler applies a reviewer's decision to an order.
// The order decides whether the decision is allowed; a refused decision is returned
// unchanged and nothing is stored.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, approves or rejects it and stores the new status.
// Returns ErrOrderNotFound when the order does not exist.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	switch cmd.Decision() {
	case Approve:
		err = aggregate.Approve()
	case Reject:
		err = aggregate.Reject()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func loadOrder(ctx context.Context, repo ports.OrderRepository, id int64) (*order.Order, error) {
	aggregate, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return aggregate, nil
}
