// Package jobs provides scheduled background tasks for the linen delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. ReconciliationJob - Runs every five seconds to recompute pickup
// projections from the order collection
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the projection recomputer
//	jobManager := jobs.NewJobManager(recomputer, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation sweep logs failures and retries on the next tick; a
// failed run leaves the previous projections in place, which is safe because
// projections are advisory and settlement always re-reads the database.
package jobs
