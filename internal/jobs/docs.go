// Package jobs provides scheduled background tasks for the ordering system.
//
// It implements cron-based jobs using github.com/robfig/cron/v3 to handle
// periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. CourierDispatchJob - Runs every second to match accepted, unassigned
// orders with available delivery users.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job ignores expected business outcomes (no order waiting, no
// free courier) and logs everything else.
package jobs
