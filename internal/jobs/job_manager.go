package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	loadAssignmentJob *LoadAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignNearestDriverHandler commands.AssignNearestDriverCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		loadAssignmentJob: NewLoadAssignmentJob(assignNearestDriverHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.loadAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start load assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.loadAssignmentJob.Stop()
}
