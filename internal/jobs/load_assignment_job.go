package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LoadAssignmentJob manages the scheduled matching of pending loads to
// available drivers. Runs every second and assigns the oldest pending
// load to the nearest driver within the search radius.
type LoadAssignmentJob struct {
	handler commands.AssignNearestDriverCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLoadAssignmentJob creates a new job for matching loads to drivers.
// Uses AssignNearestDriverCommandHandler to process one assignment per tick.
func NewLoadAssignmentJob(handler commands.AssignNearestDriverCommandHandler, logger *slog.Logger) *LoadAssignmentJob {
	return &LoadAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "load_assignment_job"),
	}
}

// Start begins the load assignment job to run every second.
func (j *LoadAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignNearestDriverCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingLoads) &&
				!errors.Is(err, commands.ErrNoAvailableDrivers) &&
				!errors.Is(err, commands.ErrNoDriversInRange) {
				j.logger.ErrorContext(ctx, "Load assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Load assignment job started (running every second)")
	return nil
}

// Stop stops the load assignment job.
func (j *LoadAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Load assignment job stopped")
}
