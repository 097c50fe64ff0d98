package commands

import (
	"context"

	"sales/internal/core/domain/model/catalog"
)

// AddProductCommandHandler adds products to the catalog.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the category and product and stores them in one transaction.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := catalog.NewCategory(cmd.CategoryName(), cmd.TaxRate())
	if err != nil {
		return err
	}

	product, err := catalog.NewProduct(cmd.Name(), cmd.Price(), category)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
