package queries

import (
	"context"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/ports"
)

// GetProductQueryHandler resolves products through the catalog port, which is cached
// in production.
type GetProductQueryHandler struct {
	catalog ports.ProductCatalog
}

func NewGetProductQueryHandler(catalog ports.ProductCatalog) GetProductQueryHandler {
	return GetProductQueryHandler{catalog: catalog}
}

// Handle returns the product, or errs.ObjectNotFoundError when the name is unknown.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return catalog.Product{}, err
	}

	return h.catalog.FindByName(ctx, query.Name())
}
