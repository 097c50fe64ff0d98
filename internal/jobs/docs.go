// Package jobs provides scheduled background tasks for the sales service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ShipmentRelayJob reads pending shipment notifications from the outbox table and
// publishes them to Kafka. Notifications are written in the same transaction that ships
// the order, so the job only has to retry until the broker accepts them.
//
// # Usage
//
//	relayJob := jobs.NewShipmentRelayJob(publishHandler, orderMetrics, "", 100, logger)
//	jobManager := jobs.NewJobManager(relayJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is a cron expression with a seconds field. The default
// "*/5 * * * * *" runs every five seconds. Overlapping runs are skipped.
//
// # Error Handling
//
// A failed batch is logged and counted; the unsent notifications stay pending and are
// retried on the next tick.
package jobs
