package queries

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order straight from the database, without rebuilding
// the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order and its lines ordered by position.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var header struct {
		ID       int64
		Status   int
		Currency string
		Total    decimal.Decimal
		Tax      decimal.Decimal
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT 
			id, 
			status, 
			currency, 
			total, 
			tax 
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Scan(&header)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			product_name, 
			quantity, 
			taxed_amount, 
			tax_amount 
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryItem, 0)
	for rows.Next() {
		var item GetOrderQueryItem
		if err = rows.Scan(&item.ProductName, &item.Quantity, &item.TaxedAmount, &item.TaxAmount); err != nil {
			return GetOrderQueryResponse{}, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:       header.ID,
		Status:   order.Status(header.Status),
		Currency: header.Currency,
		Total:    header.Total,
		Tax:      header.Tax,
		Items:    items,
	}, nil
}
