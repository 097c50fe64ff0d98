package queries_test

import (
	"context"
	"testing"

	"sales/internal/core/application/usecases/queries"
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
	return args.Get(0).(map[string]catalog.Product), args.Error(1)
}

func TestGetProductQueryHandler_Handle(t *testing.T) {
	t.Run("should return product from catalog", func(t *testing.T) {
		ctx := t.Context()
		rate, _ := kernel.NewTaxRate(decimal.NewFromInt(20))
		category, _ := catalog.NewCategory("apparel", rate)
		shoes, _ := catalog.NewProduct("shoes", kernel.MustParseMoney("20.00"), category)

		products := new(MockProductCatalog)
		products.On("FindByName", ctx, "shoes").Return(shoes, nil).Once()

		query, err := queries.NewGetProductQuery("shoes")
		require.NoError(t, err)

		found, err := queries.NewGetProductQueryHandler(products).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "shoes", found.Name())
		products.AssertExpectations(t)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		ctx := t.Context()
		products := new(MockProductCatalog)
		products.On("FindByName", ctx, "hat").
			Return(catalog.Product{}, errs.NewObjectNotFoundError("product", "hat")).Once()

		query, _ := queries.NewGetProductQuery("hat")
		_, err := queries.NewGetProductQueryHandler(products).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should refuse blank name", func(t *testing.T) {
		_, err := queries.NewGetProductQuery("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		products := new(MockProductCatalog)

		_, err := queries.NewGetProductQueryHandler(products).Handle(t.Context(), queries.GetProductQuery{})

		require.ErrorIs(t, err, queries.ErrGetProductQueryIsNotConstructed)
	})
}
