package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrTaxRateIsNotConstructed = errs.NewValueIsRequiredError("tax rate must be created via NewTaxRate")

// TaxRate is a non-negative percentage: 20 means 20%.
type TaxRate struct { //nolint:recvcheck //using for validation
	percentage decimal.Decimal
	guard      guard.ConstructorGuard
}

func NewTaxRate(percentage decimal.Decimal) (TaxRate, error) {
	if percentage.IsNegative() {
		return TaxRate{}, errs.NewValueIsInvalidErrorWithCause(
			"tax percentage", fmt.Errorf("%s is less than 0", percentage.String()))
	}
	return TaxRate{percentage: percentage, guard: guard.NewConstructorGuard()}, nil
}

func (r TaxRate) Validate() error {
	return r.guard.Validate(ErrTaxRateIsNotConstructed)
}

func (r TaxRate) Percentage() decimal.Decimal {
	return r.percentage
}

func (r TaxRate) String() string {
	return r.percentage.String() + "%"
}
