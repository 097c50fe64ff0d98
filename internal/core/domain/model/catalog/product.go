package catalog

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductAlreadyExists is returned when a product name is registered twice.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrCategoryTaxRateConflict is returned when a category is registered again with a
	// different tax rate.
	ErrCategoryTaxRateConflict = errors.New("category already exists with another tax rate")
)

// Product is a catalog entry. Its name is unique within the catalog.
type Product struct { //nolint:recvcheck //using for validation
	name     string
	price    kernel.Money
	category Category
	guard    guard.ConstructorGuard
}

// NewProduct creates a product priced per unit, before tax.
//
// Example:
//
//	rate, _ := kernel.NewTaxRate(decimal.NewFromInt(20))
//	shoes, _ := catalog.NewCategory("shoes", rate)
//	product, err := catalog.NewProduct("running shoes", kernel.MustParseMoney("20.00"), shoes)
func NewProduct(name string, price kernel.Money, category Category) (Product, error) {
	product := Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		product.setName(name),
		product.setPrice(price),
		product.setCategory(category),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) Name() string {
	return p.name
}

// Price is the unit price before tax.
func (p Product) Price() kernel.Money {
	return p.price
}

func (p Product) Category() Category {
	return p.category
}

// Taxed returns the tax-inclusive amount and the tax for quantity units.
func (p Product) Taxed(quantity int) (taxed kernel.Money, tax kernel.Money) {
	return p.price.Taxed(p.category.TaxRate(), quantity)
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
