// Package jobs provides scheduled background tasks for the counter engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path should never pay for.
//
// # Available Jobs
//
// 1. FileCleanupJob - Detaches receipt uploads from settled bill payments once
// they pass the configured age, queues them in the upload deletion queue, and
// permanently deletes queued uploads once their retention window runs out.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required jobs
//	jobManager := jobs.NewJobManager(fileCleanupJob)
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
// A failure on one upload is logged and skipped; the upload stays queued and
// is retried on the next pass. Stage failures never abort the whole run.
package jobs
