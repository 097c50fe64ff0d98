package ports

import (
	"context"

	"sales/internal/core/domain/model/catalog"
)

// ProductCatalog resolves products by name.
type ProductCatalog interface {
	// FindByName returns the product with the given name, or errs.ObjectNotFoundError.
	FindByName(ctx context.Context, name string) (catalog.Product, error)

	// FindByNames returns the products found for names, keyed by name. Names with no
	// product are simply absent from the result; callers compare the key sets.
	FindByNames(ctx context.Context, names []string) (map[string]catalog.Product, error)
}

// ProductRepository is the writable side of the catalog.
type ProductRepository interface {
	ProductCatalog

	// Add stores the product and its category. Product names are unique.
	Add(ctx context.Context, product catalog.Product) error
}
