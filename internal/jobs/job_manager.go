// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the daily
// delayed-deliveries report; JobManager exists so startup and shutdown stay
// uniform as jobs are added.
package jobs

import (
	"fmt"
	"log/slog"

	"logistica/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	delayedDeliveriesJob *DelayedDeliveriesJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(statsHandler queries.GetDeliveryStatsQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		delayedDeliveriesJob: NewDelayedDeliveriesJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.delayedDeliveriesJob.Start(); err != nil {
		return fmt.Errorf("failed to start delayed deliveries job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedDeliveriesJob.Stop()
}
