package order

import "errors"

// Transition failures. Each (status, transition) pair that is not allowed maps to
// exactly one of these in the lifecycle table (see status.go).
var (
	ErrRejectedOrderCannotBeApproved = errors.New("rejected order cannot be approved")
	ErrApprovedOrderCannotBeRejected = errors.New("approved order cannot be rejected")
	ErrShippedOrdersCannotBeChanged  = errors.New("shipped orders cannot be changed")
	ErrOrderNotReadyForShipment      = errors.New("order is not ready for shipment")
	ErrOrderCannotBeShippedTwice     = errors.New("order cannot be shipped twice")
	ErrOrderAlreadyApproved          = errors.New("order is already approved")
	ErrOrderAlreadyRejected          = errors.New("order is already rejected")
)
