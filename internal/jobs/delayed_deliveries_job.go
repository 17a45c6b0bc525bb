package jobs

import (
	"context"
	"log/slog"

	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// delayedReportSchedule fires every morning at 07:00 server time, before the
// dispatch shift starts.
const delayedReportSchedule = "0 7 * * *"

// DelayedDeliveriesJob logs a daily report of deliveries whose scheduled date
// has passed without completion. Observability only: the job never mutates
// delivery state.
type DelayedDeliveriesJob struct {
	handler queries.GetDeliveryStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDelayedDeliveriesJob creates the daily delayed-deliveries report job.
func NewDelayedDeliveriesJob(handler queries.GetDeliveryStatsQueryHandler, logger *slog.Logger) *DelayedDeliveriesJob {
	return &DelayedDeliveriesJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delayed_deliveries_job"),
	}
}

// Start schedules the daily report.
func (j *DelayedDeliveriesJob) Start() error {
	_, err := j.cron.AddFunc(delayedReportSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed deliveries report job started (daily at 07:00)")
	return nil
}

// Stop stops the report job.
func (j *DelayedDeliveriesJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delayed deliveries report job stopped")
}

func (j *DelayedDeliveriesJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetDeliveryStatsQuery(kernel.Today())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build stats query", "error", err)
		return
	}

	stats, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed deliveries report failed", "error", err)
		return
	}

	if stats.Delayed.Count == 0 {
		j.logger.InfoContext(ctx, "No delayed deliveries this morning")
		return
	}

	oldest := stats.Delayed.Deliveries[0]
	j.logger.WarnContext(ctx, "Delayed deliveries pending",
		"count", stats.Delayed.Count,
		"oldest_scheduled_date", oldest.ScheduledDate.String(),
		"unpaid_count", stats.Unpaid.Count,
		"unpaid_total", stats.Unpaid.TotalAmount,
	)
}
