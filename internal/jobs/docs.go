// Package jobs provides scheduled background tasks for the marketplace service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending order events from the
// outbox to Kafka and mark them sent
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, 100, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" (every second) and skips a
// tick while the previous batch is still running.
//
// # Error Handling
//
// - Relay failures are logged; the batch stays pending and is retried next tick
// - Failed job starts stop any already running jobs
package jobs
