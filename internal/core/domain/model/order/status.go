package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Created ──approve──> Approved ──ship──> Shipped
//	   │
//	   └────reject────> Rejected
//
// Shipped and Rejected accept no further transition. Every other (status, transition)
// pair fails with the error listed in lifecycle.
type Status int

const (
	// Unknown is the zero value and is never a valid state.
	Unknown Status = iota

	// Created is the only initial state; items are added while the order is Created.
	Created

	// Approved orders are waiting for shipment.
	Approved

	// Rejected is final.
	Rejected

	// Shipped is final.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Approved: "Approved",
		Rejected: "Rejected",
		Shipped:  "Shipped",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:  "Created",
		Approved: "Approved",
		Rejected: "Rejected",
		Shipped:  "Shipped",
	}
}

// Validate checks that s is one of Created, Approved, Rejected or Shipped.
// It is used on values read back from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for any invalid value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve returns the status after approval, or the error refusing it.
func (s Status) Approve() (Status, error) {
	return s.apply(approve)
}

// Reject returns the status after rejection, or the error refusing it.
func (s Status) Reject() (Status, error) {
	return s.apply(reject)
}

// Ship returns the status after shipment, or the error refusing it.
func (s Status) Ship() (Status, error) {
	return s.apply(ship)
}

type transition int

const (
	approve transition = iota + 1
	reject
	ship
)

func (t transition) String() string {
	switch t {
	case approve:
		return "approve"
	case reject:
		return "reject"
	case ship:
		return "ship"
	default:
		return "unknown"
	}
}

type move struct {
	from Status
	via  transition
}

type outcome struct {
	to  Status
	err error
}

// lifecycle holds every legality check of the order workflow. A move maps either to
// its target status or to the error that refuses it; nothing else decides transitions.
var lifecycle = map[move]outcome{
	{Created, approve}: {to: Approved},
	{Created, reject}:  {to: Rejected},
	{Approved, ship}:   {to: Shipped},

	{Created, ship}: {err: ErrOrderNotReadyForShipment},

	{Approved, approve}: {err: ErrOrderAlreadyApproved},
	{Approved, reject}:  {err: ErrApprovedOrderCannotBeRejected},

	{Rejected, approve}: {err: ErrRejectedOrderCannotBeApproved},
	{Rejected, reject}:  {err: ErrOrderAlreadyRejected},
	{Rejected, ship}:    {err: ErrOrderNotReadyForShipment},

	{Shipped, approve}: {err: ErrShippedOrdersCannotBeChanged},
	{Shipped, reject}:  {err: ErrShippedOrdersCannotBeChanged},
	{Shipped, ship}:    {err: ErrOrderCannotBeShippedTwice},
}

func (s Status) apply(t transition) (Status, error) {
	result, ok := lifecycle[move{from: s, via: t}]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s.String(), t.String()),
		)
	}
	if result.err != nil {
		return 0, result.err
	}
	return result.to, nil
}
