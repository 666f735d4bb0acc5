package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DelayScanJob periodically scans for stops whose planned arrival has passed
// without a recorded arrival and logs them for operators. Runs once a minute;
// delays develop on a scale of minutes, not seconds.
type DelayScanJob struct {
	handler queries.GetDelayedStopsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDelayScanJob creates a new job for scanning overdue stops.
// Uses GetDelayedStopsQueryHandler to execute the scan every minute.
func NewDelayScanJob(handler queries.GetDelayedStopsQueryHandler, logger *slog.Logger) *DelayScanJob {
	return &DelayScanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delay_scan_job"),
	}
}

// Start begins the delay scan job to run every minute.
func (j *DelayScanJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetDelayedStopsQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delay scan job failed to build query", "error", err)
			return
		}

		delayed, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delay scan job failed", "error", err)
			return
		}

		for _, d := range delayed {
			j.logger.WarnContext(ctx, "Stop is overdue",
				"order_id", d.OrderID,
				"sequence", d.Sequence,
				"facility", d.FacilityName,
				"city", d.City,
				"planned_arrival_at", d.PlannedArrivalAt,
				"delay_reason", d.DelayReasonCode,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delay scan job started (running every minute)")
	return nil
}

// Stop stops the delay scan job.
func (j *DelayScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delay scan job stopped")
}
