package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every five seconds.
const DefaultRelaySchedule = "*/5 * * * * *"

type (
	ShipmentRelay interface {
		Handle(ctx context.Context, cmd commands.PublishShipmentNotificationsCommand) (int, error)
	}

	NotificationRecorder interface {
		RecordNotifications(sent int, failed bool)
	}
)

// ShipmentRelayJob periodically hands pending shipment notifications to the broker.
// A run that is still publishing when the next tick fires causes that tick to be skipped.
type ShipmentRelayJob struct {
	relay     ShipmentRelay
	recorder  NotificationRecorder
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewShipmentRelayJob creates the relay job. schedule is a six field cron expression
// (with seconds); an empty schedule means DefaultRelaySchedule.
func NewShipmentRelayJob(
	relay ShipmentRelay,
	recorder NotificationRecorder,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *ShipmentRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}

	return &ShipmentRelayJob{
		relay:     relay,
		recorder:  recorder,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "shipment_relay_job"),
	}
}

// Start schedules the job.
func (j *ShipmentRelayJob) Start() error {
	cmd, err := commands.NewPublishShipmentNotificationsCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background(), cmd)
	}); err != nil {
		return fmt.Errorf("invalid relay schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce publishes one batch and reports the outcome.
func (j *ShipmentRelayJob) RunOnce(ctx context.Context, cmd commands.PublishShipmentNotificationsCommand) {
	sent, err := j.relay.Handle(ctx, cmd)
	j.recorder.RecordNotifications(sent, err != nil)

	if err != nil {
		j.logger.ErrorContext(ctx, "Shipment relay job failed", "sent", sent, "error", err)
		return
	}
	if sent > 0 {
		j.logger.InfoContext(ctx, "Shipment notifications published", "sent", sent)
	}
}

// Stop stops the schedule and waits for a running batch to finish.
func (j *ShipmentRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shipment relay job stopped")
}
