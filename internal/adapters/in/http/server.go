package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type (
	ProductAdder interface {
		Handle(ctx context.Context, cmd commands.AddProductCommand) error
	}

	ProductGetter interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (catalog.Product, error)
	}

	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
	}

	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	OrderApprover interface {
		Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
	}

	OrderShipper interface {
		Handle(ctx context.Context, cmd commands.ShipOrderCommand) error
	}

	// Metrics is the subset of metrics.OrderMetrics the server reports to.
	Metrics interface {
		RecordOrderCreated()
		RecordTransition(operation, result string)
		ObserveRequest(method, route string, status int, elapsed time.Duration)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AddProduct   ProductAdder
	GetProduct   ProductGetter
	CreateOrder  OrderCreator
	GetOrder     OrderGetter
	ApproveOrder OrderApprover
	ShipOrder    OrderShipper
}

// Server implements ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  Metrics
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, metrics Metrics) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
	}
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddProductCommand(body.Name, body.Price, body.Category, body.TaxPercentage)
	if err != nil {
		return err
	}

	if err = s.handlers.AddProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProduct handles GET /api/v1/products/{name}.
func (s *Server) GetProduct(ctx echo.Context, name string) error {
	query, err := queries.NewGetProductQuery(name)
	if err != nil {
		return err
	}

	product, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Product{
		Name:          product.Name(),
		Price:         product.Price().String(),
		Category:      product.Category().Name(),
		TaxPercentage: product.Category().TaxRate().Percentage().String(),
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(body.Items))
	for i, item := range body.Items {
		lines[i] = commands.OrderLine{ProductName: item.ProductName, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(lines)
	if err != nil {
		return err
	}

	id, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.RecordOrderCreated()

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/v1/orders/%d", id))
	return ctx.JSON(http.StatusCreated, OrderCreated{ID: id})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	items := make([]OrderItem, len(found.Items))
	for i, item := range found.Items {
		items[i] = OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			TaxedAmount: amount(item.TaxedAmount),
			TaxAmount:   amount(item.TaxAmount),
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:       found.ID,
		Status:   found.Status.String(),
		Currency: found.Currency,
		Total:    amount(found.Total),
		Tax:      amount(found.Tax),
		Items:    items,
	})
}

// DecideOrder handles POST /api/v1/orders/{orderId}/approval.
func (s *Server) DecideOrder(ctx echo.Context, orderID int64) error {
	var body Approval
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	decision, err := commands.ParseDecision(body.Decision)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, decision)
	if err != nil {
		return err
	}

	err = s.handlers.ApproveOrder.Handle(ctx.Request().Context(), cmd)
	s.metrics.RecordTransition(decision.String(), transitionResult(err))
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/shipment.
func (s *Server) ShipOrder(ctx echo.Context, orderID int64) error {
	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return err
	}

	err = s.handlers.ShipOrder.Handle(ctx.Request().Context(), cmd)
	s.metrics.RecordTransition(metrics.OperationShip, transitionResult(err))
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case isConflict(err), errors.Is(err, commands.ErrOrderNotFound):
		return metrics.ResultRefused
	default:
		return metrics.ResultError
	}
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
