package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "sales/internal/adapters/out/postgres"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite tests the GORM-based Unit of Work implementation
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(postgres_adapter.Models()...))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, products, categories, shipment_notifications").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentCommitsOrderAndNotificationTogether() {
	ctx := context.Background()
	o := suite.storeApprovedOrder(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(o.Ship())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.ShipmentService().NotifyShipped(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, restored.Status())

	pending, err := suite.factory.Create().ShipmentOutbox().PullPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(o.ID(), pending[0].OrderID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrderAndNotification() {
	ctx := context.Background()
	o := suite.storeApprovedOrder(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(o.Ship())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.ShipmentService().NotifyShipped(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, restored.Status())

	pending, err := suite.factory.Create().ShipmentOutbox().PullPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	product := suite.product("shoes")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, product))

	_, err := suite.factory.Create().ProductRepository().FindByName(ctx, "shoes")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Uncommitted product should not be visible")

	suite.Require().NoError(uow.Commit(ctx))

	found, err := suite.factory.Create().ProductRepository().FindByName(ctx, "shoes")
	suite.Require().NoError(err)
	suite.Equal("shoes", found.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) storeApprovedOrder(ctx context.Context) *order.Order {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	o, err := order.NewOrder(id)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(suite.product("shoes"), 1))
	suite.Require().NoError(repo.Add(ctx, o))
	suite.Require().NoError(o.Approve())
	suite.Require().NoError(repo.Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) product(name string) catalog.Product {
	rate, err := kernel.NewTaxRate(decimal.NewFromInt(20))
	suite.Require().NoError(err)
	category, err := catalog.NewCategory("apparel", rate)
	suite.Require().NoError(err)
	product, err := catalog.NewProduct(name, kernel.MustParseMoney("20.00"), category)
	suite.Require().NoError(err)
	return product
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
