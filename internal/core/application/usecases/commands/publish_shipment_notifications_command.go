package commands

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrPublishShipmentNotificationsCommandIsNotConstructed = errors.New(
	"PublishShipmentNotificationsCommand must be created via NewPublishShipmentNotificationsCommand constructor",
)

// PublishShipmentNotificationsCommand asks to deliver up to BatchSize pending
// shipment notifications.
type PublishShipmentNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishShipmentNotificationsCommand(batchSize int) (PublishShipmentNotificationsCommand, error) {
	if batchSize <= 0 {
		return PublishShipmentNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}

	return PublishShipmentNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishShipmentNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPublishShipmentNotificationsCommandIsNotConstructed)
}

func (c PublishShipmentNotificationsCommand) BatchSize() int {
	return c.batchSize
}
