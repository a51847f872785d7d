// Package jobs provides scheduled background tasks for the package tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every minute to surface packages still in
// route past their expected delivery time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueParcelsHandler, logger)
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
// The overdue delivery job uses the cron expression "0 * * * * *", once per
// minute. Late packages rarely stop being late within a minute, so a tighter
// schedule would only add noise.
//
// # Error Handling
//
// The overdue job is read-only: it reports late packages through the log and
// never advances a package's status. Status transitions happen exclusively
// through the lifecycle endpoints.
package jobs
