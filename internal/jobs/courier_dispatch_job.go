package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodex/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierDispatchJob periodically matches accepted, unassigned orders with
// available delivery users. Runs every second; an idle system (no order or no
// free courier) is not an error.
type CourierDispatchJob struct {
	handler commands.DispatchCourierCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierDispatchJob creates a new job for automatic courier dispatch.
func NewCourierDispatchJob(handler commands.DispatchCourierCommandHandler, logger *slog.Logger) *CourierDispatchJob {
	return &CourierDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_dispatch_job"),
	}
}

// Start begins the dispatch job, running every second.
func (j *CourierDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchCourierCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Expected idle outcomes stay out of the log.
			if !errors.Is(err, commands.ErrNoOrderToDispatch) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Courier dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *CourierDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier dispatch job stopped")
}
