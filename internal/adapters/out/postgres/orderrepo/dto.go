// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id column is a bigserial; NextID draws from its sequence.
type OrderDTO struct {
	ID       int64           `gorm:"primaryKey"`
	Status   int             `gorm:"not null;index"`
	Currency string          `gorm:"type:varchar(3);not null"`
	Total    decimal.Decimal `gorm:"type:numeric;not null"`
	Tax      decimal.Decimal `gorm:"type:numeric;not null"`
	Items    []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. It keeps a copy of the product and category as they
// were when the order was created, so later catalog changes never alter an order.
type OrderItemDTO struct {
	OrderID       int64           `gorm:"primaryKey;autoIncrement:false"`
	Position      int             `gorm:"primaryKey;autoIncrement:false"`
	ProductName   string          `gorm:"not null"`
	ProductPrice  decimal.Decimal `gorm:"type:numeric;not null"`
	CategoryName  string          `gorm:"not null"`
	TaxPercentage decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity      int             `gorm:"not null"`
	TaxedAmount   decimal.Decimal `gorm:"type:numeric;not null"`
	TaxAmount     decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		product := item.Product()
		dtos = append(dtos, OrderItemDTO{
			OrderID:       aggregate.ID(),
			Position:      i,
			ProductName:   product.Name(),
			ProductPrice:  product.Price().Amount(),
			CategoryName:  product.Category().Name(),
			TaxPercentage: product.Category().TaxRate().Percentage(),
			Quantity:      item.Quantity(),
			TaxedAmount:   item.TaxedAmount().Amount(),
			TaxAmount:     item.TaxAmount().Amount(),
		})
	}

	return OrderDTO{
		ID:       aggregate.ID(),
		Status:   int(aggregate.Status()),
		Currency: aggregate.Currency(),
		Total:    aggregate.Total().Amount(),
		Tax:      aggregate.Tax().Amount(),
		Items:    dtos,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-derives every item and
// refuses stored totals that do not match.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, order.Status(dto.Status), dto.Currency, items, total, tax)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	rate, err := kernel.NewTaxRate(dto.TaxPercentage)
	if err != nil {
		return order.Item{}, err
	}
	category, err := catalog.NewCategory(dto.CategoryName, rate)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.ProductPrice)
	if err != nil {
		return order.Item{}, err
	}
	product, err := catalog.NewProduct(dto.ProductName, price, category)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(product, dto.Quantity)
}
