package jobs

import (
	"context"
	"log/slog"

	"onlineshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockMonitorJob periodically checks the catalog for products whose
// available quantity has dropped to or below the configured threshold and
// logs a warning per depleted product for the replenishment workflow.
type LowStockMonitorJob struct {
	handler   queries.GetLowStockProductsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockMonitorJob creates a job that reports products at or below the
// given stock threshold once a minute.
func NewLowStockMonitorJob(
	handler queries.GetLowStockProductsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockMonitorJob {
	return &LowStockMonitorJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_monitor_job"),
	}
}

// Start begins the low stock monitoring job to run every minute.
func (j *LowStockMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetLowStockProductsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock query rejected", "error", queryErr)
			return
		}

		products, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock monitoring failed", "error", handleErr)
			return
		}

		for _, product := range products {
			j.logger.WarnContext(ctx, "Product running low on stock",
				"productId", product.ID.String(),
				"code", product.Code,
				"availableQuantity", product.AvailableQuantity,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock monitoring job started (running every minute)")
	return nil
}

// Stop stops the low stock monitoring job.
func (j *LowStockMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock monitoring job stopped")
}
