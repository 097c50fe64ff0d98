package commands_test

import (
	"context"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

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

type MockProductRepository struct {
	MockProductCatalog
}

func (m *MockProductRepository) Add(ctx context.Context, p catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockShipmentService struct{ mock.Mock }

func (m *MockShipmentService) NotifyShipped(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockShipmentOutbox struct{ mock.Mock }

func (m *MockShipmentOutbox) PullPending(ctx context.Context, limit int) ([]ports.ShipmentNotification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ShipmentNotification), args.Error(1)
}
func (m *MockShipmentOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, n ports.ShipmentNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) ShipmentService() ports.ShipmentService {
	args := m.Called()
	return args.Get(0).(ports.ShipmentService)
}
func (m *MockUoW) ShipmentOutbox() ports.ShipmentOutbox {
	args := m.Called()
	return args.Get(0).(ports.ShipmentOutbox)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

func newProduct(t *testing.T, name, price string, taxPercentage int64) catalog.Product {
	t.Helper()

	rate, err := kernel.NewTaxRate(decimal.NewFromInt(taxPercentage))
	require.NoError(t, err)
	category, err := catalog.NewCategory("category of "+name, rate)
	require.NoError(t, err)
	product, err := catalog.NewProduct(name, kernel.MustParseMoney(price), category)
	require.NoError(t, err)
	return product
}

func newOrderInStatus(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id)
	require.NoError(t, err)

	switch status {
	case order.Approved:
		require.NoError(t, o.Approve())
	case order.Rejected:
		require.NoError(t, o.Reject())
	case order.Shipped:
		require.NoError(t, o.Approve())
		require.NoError(t, o.Ship())
	}
	return o
}
