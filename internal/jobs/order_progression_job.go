package jobs

import (
	"context"
	"log/slog"

	"shield/internal/core/domain/model/order"
	"shield/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// orderProgressionSchedule advances orders every ten seconds so clients can
// observe a full lifecycle within a short session.
const orderProgressionSchedule = "*/10 * * * * *"

// OrderProgressionJob manages the scheduled progression of placed orders.
// Each tick advances every active order one lifecycle step, from none through
// packed and dispatched to delivered.
type OrderProgressionJob struct {
	orders ports.OrderStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderProgressionJob creates a new job for progressing orders.
func NewOrderProgressionJob(orders ports.OrderStore, logger *slog.Logger) *OrderProgressionJob {
	return &OrderProgressionJob{
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_progression_job"),
	}
}

// Start begins the order progression job.
func (j *OrderProgressionJob) Start() error {
	_, err := j.cron.AddFunc(orderProgressionSchedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started")
	return nil
}

// Stop stops the order progression job.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}

// run advances every active order one lifecycle step. A failed update is
// logged and skipped so the remaining orders still progress.
func (j *OrderProgressionJob) run(ctx context.Context) error {
	records, err := j.orders.ActiveOrders(ctx)
	if err != nil {
		return err
	}

	for _, record := range records {
		next, ok := nextStatus(record.Status)
		if !ok {
			continue
		}

		if err := j.orders.UpdateStatus(ctx, record.ID, next); err != nil {
			j.logger.ErrorContext(ctx, "Failed to progress order",
				"order_number", record.ID, "status", next.String(), "error", err)
			continue
		}

		j.logger.DebugContext(ctx, "Order progressed",
			"order_number", record.ID, "status", next.String())
	}

	return nil
}

// nextStatus returns the lifecycle step following the given status. Delivered
// and cancelled orders have no next step.
func nextStatus(status order.Status) (order.Status, bool) {
	switch status {
	case order.None:
		return order.Packed, true
	case order.Packed:
		return order.Dispatched, true
	case order.Dispatched:
		return order.Delivered, true
	default:
		return status, false
	}
}
