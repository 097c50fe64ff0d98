package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand registers a product and the category it belongs to.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	name         string
	price        kernel.Money
	categoryName string
	taxRate      kernel.TaxRate

	guard guard.ConstructorGuard
}

// NewAddProductCommand validates the names and turns price and tax percentage into
// domain values. Price and percentage must not be negative.
func NewAddProductCommand(
	name string,
	price decimal.Decimal,
	categoryName string,
	taxPercentage decimal.Decimal,
) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategoryName(categoryName),
		cmd.setTaxRate(taxPercentage),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) Name() string {
	return c.name
}

func (c AddProductCommand) Price() kernel.Money {
	return c.price
}

func (c AddProductCommand) CategoryName() string {
	return c.categoryName
}

func (c AddProductCommand) TaxRate() kernel.TaxRate {
	return c.taxRate
}

func (c *AddProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddProductCommand) setPrice(price decimal.Decimal) error {
	money, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}
	c.price = money
	return nil
}

func (c *AddProductCommand) setCategoryName(categoryName string) error {
	if strings.TrimSpace(categoryName) == "" {
		return errs.NewValueIsRequiredError("categoryName")
	}
	c.categoryName = categoryName
	return nil
}

func (c *AddProductCommand) setTaxRate(taxPercentage decimal.Decimal) error {
	rate, err := kernel.NewTaxRate(taxPercentage)
	if err != nil {
		return err
	}
	c.taxRate = rate
	return nil
}
