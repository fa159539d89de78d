package jobs

import (
	"fmt"
	"log/slog"

	"shield/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProgressionJob *OrderProgressionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orders ports.OrderStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderProgressionJob: NewOrderProgressionJob(orders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderProgressionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order progression job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderProgressionJob.Stop()
}
