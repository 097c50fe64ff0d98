package catalog

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups products that share a tax rate.
type Category struct { //nolint:recvcheck //using for validation
	name    string
	taxRate kernel.TaxRate
	guard   guard.ConstructorGuard
}

// NewCategory validates that name is not blank and the tax rate was constructed.
func NewCategory(name string, taxRate kernel.TaxRate) (Category, error) {
	category := Category{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		category.setName(name),
		category.setTaxRate(taxRate),
	); err != nil {
		return Category{}, err
	}

	return category, nil
}

func (c Category) Validate() error {
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c Category) Name() string {
	return c.name
}

func (c Category) TaxRate() kernel.TaxRate {
	return c.taxRate
}

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	c.name = name
	return nil
}

func (c *Category) setTaxRate(taxRate kernel.TaxRate) error {
	if err := taxRate.Validate(); err != nil {
		return err
	}
	c.taxRate = taxRate
	return nil
}
