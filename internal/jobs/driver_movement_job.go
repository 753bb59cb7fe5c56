package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type MoveDriversHandler interface {
	Handle(ctx context.Context, cmd commands.MoveDriversCommand) error
}

// DriverMovementJob advances every driver on delivery by one simulated minute.
// Runs every second.
type DriverMovementJob struct {
	handler MoveDriversHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewDriverMovementJob(handler MoveDriversHandler, logger *slog.Logger) *DriverMovementJob {
	return &DriverMovementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_movement_job"),
	}
}

func (j *DriverMovementJob) Start() error {
	if _, err := j.cron.AddFunc(EverySecond, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver movement job started (running every second)")
	return nil
}

// Run moves drivers once. Every failure is logged.
func (j *DriverMovementJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewMoveDriversCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Driver movement job failed", "error", err)
	}
}

func (j *DriverMovementJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Driver movement job stopped")
}
