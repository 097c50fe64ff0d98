package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentRelayJob *ShipmentRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(shipmentRelayJob *ShipmentRelayJob) *JobManager {
	return &JobManager{
		shipmentRelayJob: shipmentRelayJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentRelayJob.Stop()
}
