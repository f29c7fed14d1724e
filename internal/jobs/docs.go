// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReportRefreshJob - Runs every thirty seconds to recompute the all-time
// statistics report consumed by the live dashboard endpoint.
//
// # Usage
//
//	job, err := jobs.NewReportRefreshJob(statsHandler, logger)
//	if err != nil {
//		log.Fatal("Failed to create report refresh job:", err)
//	}
//
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start report refresh job:", err)
//	}
//	defer job.Stop()
//
//	// The latest report is read lock-free by the HTTP layer:
//	report := job.Latest()
//
// # Error Handling
//
// A failed refresh is logged and the previously published report stays in
// place, so the dashboard degrades to slightly stale data instead of
// erroring.
package jobs
