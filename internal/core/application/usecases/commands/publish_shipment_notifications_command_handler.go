package commands

import (
	"context"
	"errors"

	"sales/internal/core/ports"
)

// PublishShipmentNotificationsCommandHandler relays pending shipment notifications from
// the outbox to the publisher.
//
// Notifications are published oldest first. The first publish failure stops the batch;
// the ones already published are still committed as sent, the rest stay pending for the
// next run. A notification can therefore be delivered more than once if the commit fails
// after publishing.
type PublishShipmentNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.NotificationPublisher
}

func NewPublishShipmentNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.NotificationPublisher,
) PublishShipmentNotificationsCommandHandler {
	return PublishShipmentNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one batch and returns how many notifications were sent.
func (h PublishShipmentNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd PublishShipmentNotificationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.ShipmentOutbox()
	pending, err := outbox.PullPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	sent := 0
	var publishErr error
	for _, notification := range pending {
		if publishErr = h.publisher.Publish(ctx, notification); publishErr != nil {
			break
		}
		if err = outbox.MarkSent(ctx, notification.ID); err != nil {
			return 0, err
		}
		sent++
	}

	if sent > 0 {
		if err = uow.Commit(ctx); err != nil {
			return 0, errors.Join(publishErr, err)
		}
	}

	return sent, publishErr
}
