package commands

import (
	"errors"
	"fmt"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// Decision is the outcome a reviewer chose for an order.
type Decision int

const (
	Approve Decision = iota + 1
	Reject
)

// ParseDecision accepts "approve" or "reject" in any letter case.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve":
		return Approve, nil
	case "reject":
		return Reject, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is neither approve nor reject", s))
	}
}

func (d Decision) String() string {
	switch d {
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// ApproveOrderCommand asks to approve or reject one order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	decision Decision

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand validates the order id and that decision is Approve or Reject.
func NewApproveOrderCommand(orderID int64, decision Decision) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDecision(decision),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

func (c ApproveOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c ApproveOrderCommand) Decision() Decision {
	return c.decision
}

func (c *ApproveOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setDecision(decision Decision) error {
	if decision != Approve && decision != Reject {
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%d is not a known decision", decision))
	}

	c.decision = decision
	return nil
}
