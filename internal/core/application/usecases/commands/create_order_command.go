package commands

import (
	"errors"
	"fmt"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine asks for quantity units of the product named ProductName.
type OrderLine struct {
	ProductName string
	Quantity    int
}

// CreateOrderCommand represents a request to create a new sales order from catalog products.
// Lines keep the order in which they were requested.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]OrderLine{
//	    {ProductName: "shoes", Quantity: 2},
//	    {ProductName: "socks", Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	lines []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that there is at least one line, every line names a
// product and every quantity is positive. All line errors are reported together.
func NewCreateOrderCommand(lines []OrderLine) (CreateOrderCommand, error) {
	if len(lines) == 0 {
		return CreateOrderCommand{}, ErrOrderLinesAreRequired
	}

	lineErrs := make([]error, 0, len(lines))
	for i, line := range lines {
		lineErrs = append(lineErrs, validateOrderLine(i, line))
	}
	if err := errors.Join(lineErrs...); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		lines: append([]OrderLine(nil), lines...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Lines returns a copy of the requested lines in input order.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

// ProductNames returns the distinct product names in order of first appearance.
func (c CreateOrderCommand) ProductNames() []string {
	seen := make(map[string]struct{}, len(c.lines))
	names := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.ProductName]; ok {
			continue
		}
		seen[line.ProductName] = struct{}{}
		names = append(names, line.ProductName)
	}
	return names
}

func validateOrderLine(index int, line OrderLine) error {
	var lineErrs []error
	if strings.TrimSpace(line.ProductName) == "" {
		lineErrs = append(lineErrs, errs.NewValueIsRequiredError(fmt.Sprintf("lines[%d].productName", index)))
	}
	if line.Quantity <= 0 {
		lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("lines[%d].quantity", index),
			fmt.Errorf("%d is not greater than 0", line.Quantity),
		))
	}
	return errors.Join(lineErrs...)
}
