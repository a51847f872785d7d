package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob watches for packages still in route past their expected
// delivery time. Runs every minute and reports findings through the log; it
// never modifies package state.
type OverdueDeliveryJob struct {
	handler queries.GetOverdueParcelsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates a new job for monitoring overdue deliveries.
func NewOverdueDeliveryJob(handler queries.GetOverdueParcelsQueryHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery job to run every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueParcelsQuery(time.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build overdue parcels query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery job failed", "error", handleErr)
			return
		}

		for _, item := range overdue {
			j.logger.WarnContext(ctx, "Package overdue",
				"packageID", item.ParcelID.String(),
				"driverID", item.DriverID.String(),
				"expectedDeliveryTime", item.ExpectedDeliveryTime,
				"overdueFor", time.Since(item.ExpectedDeliveryTime).Round(time.Minute).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
