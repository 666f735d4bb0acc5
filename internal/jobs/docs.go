// Package jobs provides scheduled background tasks for the tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for shipment monitoring.
//
// # Available Jobs
//
// 1. DelayScanJob - Runs every minute to find stops whose planned arrival has passed without a recorded arrival and log them for operators
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(delayedStopsHandler, logger)
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
// The delay scan uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Delays develop on a scale of minutes, so a
// tighter schedule would only repeat the same findings.
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - Each overdue stop is logged at WARN level with its order, facility and planned arrival
package jobs
