package productrepo

import (
	"context"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/ports"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 1024

// CachedCatalog keeps recently resolved products in memory in front of another catalog.
// Products never change once added, so only hits are cached; a miss always goes to the
// underlying catalog and a product added later is found on the next lookup.
type CachedCatalog struct {
	next  ports.ProductCatalog
	cache *lru.Cache[string, catalog.Product]
}

// NewCachedCatalog wraps next with an LRU cache of up to size products.
// A non-positive size selects the default.
func NewCachedCatalog(next ports.ProductCatalog, size int) (*CachedCatalog, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	cache, err := lru.New[string, catalog.Product](size)
	if err != nil {
		return nil, err
	}

	return &CachedCatalog{next: next, cache: cache}, nil
}

func (c *CachedCatalog) FindByName(ctx context.Context, name string) (catalog.Product, error) {
	if product, ok := c.cache.Get(name); ok {
		return product, nil
	}

	product, err := c.next.FindByName(ctx, name)
	if err != nil {
		return catalog.Product{}, err
	}

	c.cache.Add(name, product)
	return product, nil
}

func (c *CachedCatalog) FindByNames(ctx context.Context, names []string) (map[string]catalog.Product, error) {
	products := make(map[string]catalog.Product, len(names))
	var misses []string
	for _, name := range names {
		if product, ok := c.cache.Get(name); ok {
			products[name] = product
			continue
		}
		misses = append(misses, name)
	}

	if len(misses) == 0 {
		return products, nil
	}

	found, err := c.next.FindByNames(ctx, misses)
	if err != nil {
		return nil, err
	}

	for name, product := range found {
		c.cache.Add(name, product)
		products[name] = product
	}

	return products, nil
}

// Len reports how many products are cached.
func (c *CachedCatalog) Len() int {
	return c.cache.Len()
}
