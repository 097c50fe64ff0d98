package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/products)
	AddProduct(ctx echo.Context) error
	// (GET /api/v1/products/{name})
	GetProduct(ctx echo.Context, name string) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID int64) error
	// (POST /api/v1/orders/{orderId}/approval)
	DecideOrder(ctx echo.Context, orderID int64) error
	// (POST /api/v1/orders/{orderId}/shipment)
	ShipOrder(ctx echo.Context, orderID int64) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) AddProduct(ctx echo.Context) error {
	return w.Handler.AddProduct(ctx)
}

func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	var name string
	if err := bindPathParameter(ctx, "name", &name); err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, name)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderID int64
	if err := bindPathParameter(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) DecideOrder(ctx echo.Context) error {
	var orderID int64
	if err := bindPathParameter(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.DecideOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ShipOrder(ctx echo.Context) error {
	var orderID int64
	if err := bindPathParameter(ctx, "orderId", &orderID); err != nil {
		return err
	}
	return w.Handler.ShipOrder(ctx, orderID)
}

func bindPathParameter(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route of ServerInterface to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/products", wrapper.AddProduct)
	router.GET("/api/v1/products/:name", wrapper.GetProduct)
	router.POST("/api/v1/orders", wrapper.CreateOrder)
	router.GET("/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST("/api/v1/orders/:orderId/approval", wrapper.DecideOrder)
	router.POST("/api/v1/orders/:orderId/shipment", wrapper.ShipOrder)
}
