// Package jobs provides scheduled background tasks for the freight marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. LoadAssignmentJob - Runs every second to assign the oldest pending load to the nearest available driver
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignNearestDriverHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps freshly posted loads from waiting on a
// dispatcher.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending loads, no
//   available drivers, nobody within the search radius)
// - All other errors are logged as they indicate system issues
package jobs
