package ports

import (
	"context"

	"kurir/internal/core/domain/model/kernel"
)

// Notifier pushes dispatch events to interested parties.
// Delivery is best effort: callers log failures and move on, an unreachable
// notification channel must never fail the business operation that caused it.
type Notifier interface {
	// NotifyCourierAssigned announces that a courier has been put on an order.
	NotifyCourierAssigned(ctx context.Context, orderID, courierID kernel.UUID, courierName string) error
}
