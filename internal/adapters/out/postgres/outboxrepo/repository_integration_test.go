package outboxrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sales/internal/adapters/out/postgres/outboxrepo"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ShipmentOutboxIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	outbox    *outboxrepo.GormShipmentOutbox
}

func (suite *ShipmentOutboxIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.ShipmentNotificationDTO{}))
}

func (suite *ShipmentOutboxIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_notifications").Error)
	suite.outbox = outboxrepo.NewGormShipmentOutbox(suite.db)
}

func (suite *ShipmentOutboxIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentOutboxIntegrationTestSuite) TestNotifyShipped_StoresSnapshot() {
	ctx := context.Background()
	o := suite.shippedOrder(11)

	suite.Require().NoError(suite.outbox.NotifyShipped(ctx, o))

	pending, err := suite.outbox.PullPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(int64(11), pending[0].OrderID)
	suite.Require().NoError(pending[0].ID.Validate())

	var payload outboxrepo.ShippedOrderPayload
	suite.Require().NoError(json.Unmarshal(pending[0].Payload, &payload))
	suite.Equal(int64(11), payload.OrderID)
	suite.Equal("Shipped", payload.Status)
	suite.Equal("48.00", payload.Total)
	suite.Equal("8.00", payload.Tax)
	suite.Require().Len(payload.Items, 1)
	suite.Equal("shoes", payload.Items[0].ProductName)
	suite.Equal(2, payload.Items[0].Quantity)
}

func (suite *ShipmentOutboxIntegrationTestSuite) TestNotifyShipped_RefusesOrderNotShipped() {
	o, err := order.NewOrder(12)
	suite.Require().NoError(err)

	err = suite.outbox.NotifyShipped(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ShipmentOutboxIntegrationTestSuite) TestPullPending_OldestFirstAndLimited() {
	ctx := context.Background()
	for id := int64(1); id <= 3; id++ {
		suite.Require().NoError(suite.outbox.NotifyShipped(ctx, suite.shippedOrder(id)))
	}

	pending, err := suite.outbox.PullPending(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(int64(1), pending[0].OrderID)
	suite.Equal(int64(2), pending[1].OrderID)
}

func (suite *ShipmentOutboxIntegrationTestSuite) TestMarkSent_RemovesFromPending() {
	ctx := context.Background()
	suite.Require().NoError(suite.outbox.NotifyShipped(ctx, suite.shippedOrder(21)))
	pending, err := suite.outbox.PullPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)

	suite.Require().NoError(suite.outbox.MarkSent(ctx, pending[0].ID))

	pending, err = suite.outbox.PullPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *ShipmentOutboxIntegrationTestSuite) TestMarkSent_Unknown_ReturnsNotFound() {
	err := suite.outbox.MarkSent(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentOutboxIntegrationTestSuite) shippedOrder(id int64) *order.Order {
	rate, err := kernel.NewTaxRate(decimal.NewFromInt(20))
	suite.Require().NoError(err)
	category, err := catalog.NewCategory("apparel", rate)
	suite.Require().NoError(err)
	shoes, err := catalog.NewProduct("shoes", kernel.MustParseMoney("20.00"), category)
	suite.Require().NoError(err)

	o, err := order.NewOrder(id)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(shoes, 2))
	suite.Require().NoError(o.Approve())
	suite.Require().NoError(o.Ship())
	return o
}

func TestShipmentOutboxIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentOutboxIntegrationTestSuite))
}
