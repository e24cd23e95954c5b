package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob manages the scheduled cancellation of stale orders.
// Runs every minute and cancels orders that have stayed available longer
// than the configured TTL without a delivery partner confirming them.
type OrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
	metrics *metrics.OrderMetrics
}

// NewOrderExpiryJob creates a new job for expiring stale orders.
// Uses ExpireStaleOrdersCommandHandler to sweep available orders every minute.
func NewOrderExpiryJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
	orderMetrics *metrics.OrderMetrics,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiry_job"),
		metrics: orderMetrics,
	}
}

// Start begins the order expiry job to run every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleOrdersCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry command is invalid", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.metrics.OrdersExpired(expired)
			j.logger.InfoContext(ctx, "Expired stale orders", "count", expired, "ttl", j.ttl.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the order expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
