package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one immutable order line. Its taxed amount and tax are derived once, at
// construction, from the product price, the category tax rate and the quantity.
type Item struct { //nolint:recvcheck //using for validation
	product     catalog.Product
	quantity    int
	taxedAmount kernel.Money
	taxAmount   kernel.Money
	guard       guard.ConstructorGuard
}

// NewItem prices quantity units of product. Quantity must be positive.
func NewItem(product catalog.Product, quantity int) (Item, error) {
	if err := product.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	taxed, tax := product.Taxed(quantity)
	return Item{
		product:     product,
		quantity:    quantity,
		taxedAmount: taxed,
		taxAmount:   tax,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Product() catalog.Product {
	return i.product
}

func (i Item) Quantity() int {
	return i.quantity
}

// TaxedAmount is the tax-inclusive line total.
func (i Item) TaxedAmount() kernel.Money {
	return i.taxedAmount
}

// TaxAmount is the tax part of the line total.
func (i Item) TaxAmount() kernel.Money {
	return i.taxAmount
}
