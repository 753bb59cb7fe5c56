package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type AssignDriverHandler interface {
	Handle(ctx context.Context, cmd commands.AssignDriverCommand) error
}

// DriverAssignmentJob hands the oldest waiting order to the nearest free driver.
// Runs every second.
type DriverAssignmentJob struct {
	handler AssignDriverHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewDriverAssignmentJob(handler AssignDriverHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

func (j *DriverAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(EverySecond, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every second)")
	return nil
}

// Run performs one assignment attempt. Nothing to assign is not an error.
func (j *DriverAssignmentJob) Run(ctx context.Context) {
	err := j.handler.Handle(ctx, commands.NewAssignDriverCommand())
	if err == nil {
		return
	}

	if errors.Is(err, commands.ErrNoOrderFound) ||
		errors.Is(err, commands.ErrNoFreeDriversFound) ||
		errors.Is(err, services.ErrDriverNotFound) {
		j.logger.DebugContext(ctx, "No assignment made", "reason", err)
		return
	}

	j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", err)
}

// Stop waits for a running assignment to finish.
func (j *DriverAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}
