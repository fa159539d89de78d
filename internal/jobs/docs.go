// Package jobs provides scheduled background tasks for the coordination server.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the coordination service.
//
// # Available Jobs
//
// 1. OrderProgressionJob - Runs every ten seconds to advance active orders one
// lifecycle step (none, packed, dispatched, delivered), simulating fulfilment
// so clients can observe status changes through the status-query endpoint.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the order store
//	jobManager := jobs.NewJobManager(orderStore, logger)
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
// - A failed status update is logged and skipped so other orders still progress
// - A failed store listing aborts the tick and is retried on the next one
// - Failed job starts leave no jobs running
package jobs
