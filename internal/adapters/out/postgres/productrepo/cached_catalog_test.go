package productrepo_test

import (
	"context"
	"errors"
	"testing"

	"sales/internal/adapters/out/postgres/productrepo"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) FindByName(ctx context.Context, name string) (catalog.Product, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockProductCatalog) FindByNames(ctx context.Context, names []string) (map[string]catalog.Product, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]catalog.Product), args.Error(1)
}

func newProduct(t *testing.T, name string) catalog.Product {
	t.Helper()

	rate, err := kernel.NewTaxRate(decimal.NewFromInt(20))
	require.NoError(t, err)
	category, err := catalog.NewCategory("apparel", rate)
	require.NoError(t, err)
	product, err := catalog.NewProduct(name, kernel.MustParseMoney("10.00"), category)
	require.NoError(t, err)
	return product
}

func TestCachedCatalog_FindByName(t *testing.T) {
	t.Run("should hit the underlying catalog once", func(t *testing.T) {
		ctx := t.Context()
		shoes := newProduct(t, "shoes")
		next := new(MockProductCatalog)
		next.On("FindByName", ctx, "shoes").Return(shoes, nil).Once()

		c, err := productrepo.NewCachedCatalog(next, 8)
		require.NoError(t, err)

		for range 3 {
			found, findErr := c.FindByName(ctx, "shoes")
			require.NoError(t, findErr)
			assert.Equal(t, "shoes", found.Name())
		}
		next.AssertExpectations(t)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("should not cache misses", func(t *testing.T) {
		ctx := t.Context()
		next := new(MockProductCatalog)
		next.On("FindByName", ctx, "hat").
			Return(catalog.Product{}, errs.NewObjectNotFoundError("product", "hat")).Twice()

		c, err := productrepo.NewCachedCatalog(next, 0)
		require.NoError(t, err)

		_, err = c.FindByName(ctx, "hat")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = c.FindByName(ctx, "hat")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		next.AssertExpectations(t)
		assert.Zero(t, c.Len())
	})
}

func TestCachedCatalog_FindByNames(t *testing.T) {
	t.Run("should only ask for names not cached yet", func(t *testing.T) {
		ctx := t.Context()
		shoes, socks := newProduct(t, "shoes"), newProduct(t, "socks")
		next := new(MockProductCatalog)
		next.On("FindByName", ctx, "shoes").Return(shoes, nil).Once()
		next.On("FindByNames", ctx, []string{"socks", "hat"}).
			Return(map[string]catalog.Product{"socks": socks}, nil).Once()

		c, err := productrepo.NewCachedCatalog(next, 8)
		require.NoError(t, err)
		_, err = c.FindByName(ctx, "shoes")
		require.NoError(t, err)

		found, err := c.FindByNames(ctx, []string{"shoes", "socks", "hat"})

		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Contains(t, found, "shoes")
		assert.Contains(t, found, "socks")
		next.AssertExpectations(t)
	})

	t.Run("should skip the underlying catalog when everything is cached", func(t *testing.T) {
		ctx := t.Context()
		shoes := newProduct(t, "shoes")
		next := new(MockProductCatalog)
		next.On("FindByNames", ctx, []string{"shoes"}).
			Return(map[string]catalog.Product{"shoes": shoes}, nil).Once()

		c, err := productrepo.NewCachedCatalog(next, 8)
		require.NoError(t, err)

		_, err = c.FindByNames(ctx, []string{"shoes"})
		require.NoError(t, err)
		found, err := c.FindByNames(ctx, []string{"shoes"})
		require.NoError(t, err)

		assert.Len(t, found, 1)
		next.AssertNumberOfCalls(t, "FindByNames", 1)
	})

	t.Run("should return underlying error", func(t *testing.T) {
		ctx := t.Context()
		next := new(MockProductCatalog)
		next.On("FindByNames", ctx, []string{"shoes"}).Return(nil, errors.New("db down")).Once()

		c, err := productrepo.NewCachedCatalog(next, 8)
		require.NoError(t, err)

		_, err = c.FindByNames(ctx, []string{"shoes"})

		require.EqualError(t, err, "db down")
	})
}
