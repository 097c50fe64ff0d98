package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

// DefaultCurrency is the currency of every order created by NewOrder.
const DefaultCurrency = "EUR"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's purchase of catalog products. It is the aggregate root that
// manages the order lifecycle from creation through approval or rejection to shipment.
//
// Order follows these invariants:
//   - The identifier is positive and never changes
//   - Total equals the sum of item taxed amounts, Tax the sum of item tax amounts
//   - Items are append-only
//   - Status changes are decided by Status, never by the caller
type Order struct {
	id       int64
	status   Status
	items    []Item
	currency string
	total    kernel.Money
	tax      kernel.Money

	isConstructed bool
}

// NewOrder creates an empty order with the given identifier.
//
// Example:
//
//	o, err := order.NewOrder(42)
//	if err != nil {
//	    // id was not positive
//	}
//	err = o.AddItem(product, 2)
func NewOrder(id int64) (*Order, error) {
	order := &Order{
		status:        Created,
		currency:      DefaultCurrency,
		total:         kernel.ZeroMoney(),
		tax:           kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read back from storage. Unlike NewOrder it accepts any
// valid status, but it still refuses totals that disagree with the items.
func RestoreOrder(
	id int64,
	status Status,
	currency string,
	items []Item,
	total kernel.Money,
	tax kernel.Money,
) (*Order, error) {
	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		status.Validate(),
		order.setCurrency(currency),
		order.setItems(items),
		total.Validate(),
		tax.Validate(),
	); err != nil {
		return nil, err
	}

	if !order.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%s does not match the items sum %s", total, order.total))
	}
	if !order.tax.IsEqual(tax) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tax", fmt.Errorf("%s does not match the items sum %s", tax, order.tax))
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Status() Status {
	return o.status
}

// HasStatus reports whether the order is currently in status s.
func (o *Order) HasStatus(s Status) bool {
	return o.status == s
}

// Items returns a copy of the order lines in the order they were added.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Currency() string {
	return o.currency
}

// Total is the tax-inclusive amount of the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Tax is the tax part of Total.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// AddItem appends quantity units of product and updates the totals. It has no status
// precondition: items are added while an order is being built, before it is stored.
func (o *Order) AddItem(product catalog.Product, quantity int) error {
	item, err := NewItem(product, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.total = o.total.Add(item.TaxedAmount())
	o.tax = o.tax.Add(item.TaxAmount())
	return nil
}

// Approve moves a Created order to Approved.
//
// Returns:
//   - ErrShippedOrdersCannotBeChanged if the order is Shipped
//   - ErrRejectedOrderCannotBeApproved if the order is Rejected
//   - ErrOrderAlreadyApproved if the order is Approved
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves a Created order to Rejected.
//
// Returns:
//   - ErrShippedOrdersCannotBeChanged if the order is Shipped
//   - ErrApprovedOrderCannotBeRejected if the order is Approved
//   - ErrOrderAlreadyRejected if the order is Rejected
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship moves an Approved order to Shipped.
//
// Returns:
//   - ErrOrderCannotBeShippedTwice if the order is Shipped
//   - ErrOrderNotReadyForShipment if the order is Created or Rejected
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCurrency(currency string) error {
	if strings.TrimSpace(currency) == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	o.currency = currency
	return nil
}

func (o *Order) setItems(items []Item) error {
	total, tax := kernel.ZeroMoney(), kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.TaxedAmount())
		tax = tax.Add(item.TaxAmount())
	}

	o.items = slices.Clone(items)
	o.total = total
	o.tax = tax
	return nil
}
