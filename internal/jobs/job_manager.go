package jobs

import (
	"fmt"
	"log/slog"
)

// EverySecond is the cron spec, with a seconds field, shared by the delivery jobs.
const EverySecond = "* * * * * *"

type scheduledJob interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  scheduledJob
}

// JobManager starts and stops the background jobs together.
// Assignment starts first so new orders have a driver before anyone moves.
type JobManager struct {
	jobs []namedJob
}

func NewJobManager(
	moveDriversHandler MoveDriversHandler,
	assignDriverHandler AssignDriverHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "driver assignment", job: NewDriverAssignmentJob(assignDriverHandler, logger)},
			{name: "driver movement", job: NewDriverMovementJob(moveDriversHandler, logger)},
		},
	}
}

// StartAll starts every job. If one fails to start, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			stopReversed(jm.jobs[:i])
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
	}
	return nil
}

// StopAll stops the jobs in reverse start order and waits for running ticks.
func (jm *JobManager) StopAll() {
	stopReversed(jm.jobs)
}

func stopReversed(jobs []namedJob) {
	for i := len(jobs) - 1; i >= 0; i-- {
		jobs[i].job.Stop()
	}
}
