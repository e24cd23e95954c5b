// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel orders that stayed available
// past their TTL without any delivery partner confirming them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireHandler, orderTTL, logger, orderMetrics)
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
// The expiry job uses the cron expression "0 * * * * *" which means it runs at
// the start of every minute. Expiry is a cleanup sweep, not a latency-sensitive
// operation, so a minute of slack is acceptable.
//
// # Error Handling
//
// - An order confirmed between the sweep's read and its guarded write is
// skipped, never cancelled; the confirmation wins
// - Sweep failures are logged and retried on the next tick
package jobs
