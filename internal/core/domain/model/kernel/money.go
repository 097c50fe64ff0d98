package kernel

import (
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places derived amounts are rounded to.
const MoneyScale = 2

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, ParseMoney or ZeroMoney")

// Money is a non-negative fixed-point amount. Arithmetic is exact; rounding only
// happens where a derived value is produced (see Taxed).
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.New(0, -MoneyScale), guard: guard.NewConstructorGuard()}
}

// NewMoney wraps amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is less than 0", amount.String()))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// ParseMoney parses a decimal string such as "20.00".
func ParseMoney(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustParseMoney is ParseMoney for constants and fixtures; it panics on bad input.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts numerically, so 48 equals 48.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Taxed computes the contributions of quantity units priced at m under rate:
//
//	taxed = round2(m * quantity * (1 + rate/100))
//	tax   = round2(m * quantity * rate/100)
//
// Each value is rounded half-up once, on the line total, never per unit.
func (m Money) Taxed(rate TaxRate, quantity int) (taxed Money, tax Money) {
	net := m.amount.Mul(decimal.NewFromInt(int64(quantity)))
	rawTax := net.Mul(rate.percentage).Shift(-2)

	taxed = Money{amount: net.Add(rawTax).Round(MoneyScale), guard: guard.NewConstructorGuard()}
	tax = Money{amount: rawTax.Round(MoneyScale), guard: guard.NewConstructorGuard()}
	return taxed, tax
}
