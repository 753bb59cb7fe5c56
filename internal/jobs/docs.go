// Package jobs runs the delivery simulation in the background with
// github.com/robfig/cron/v3.
//
// # Jobs
//
//  1. DriverAssignmentJob gives the oldest Created order to the free driver who reaches
//     its restaurant first.
//  2. DriverMovementJob moves every driver on delivery one simulated minute towards their
//     next stop, picking orders up and completing them on arrival.
//
// Both run every second (EverySecond, a six-field spec with seconds).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(moveDriversHandler, assignDriverHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Errors
//
// The assignment job logs "nothing to do" outcomes (no waiting order, no free driver,
// no driver with a fitting bag) at debug level; everything else is logged as an error.
package jobs
