package reconciler

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
)

// RecallPending re-queues every pending order for polling. Run at startup so
// a restart does not strand in-flight payments.
func RecallPending(ctx context.Context, orders port.OrderRepository, scheduler port.ReconcileScheduler) error {
	list, err := orders.ListOrdersByStatus(ctx, domain.OrderStatusPending)
	if err != nil {
		return err
	}
	for _, order := range list {
		scheduler.Schedule(order.ProviderTxID, order.Method)
	}

	return nil
}
