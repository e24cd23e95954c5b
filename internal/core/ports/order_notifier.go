package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderNotifier publishes order state changes to the real-time channel keyed
// by order identifier. Implementations must only be handed committed state:
// command handlers publish after the transaction commits, so subscribers never
// observe an order that failed to persist.
type OrderNotifier interface {
	// PublishOrderConfirmed announces that a delivery partner confirmed the order.
	PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error

	// PublishTrackingUpdate announces a live status/location update for the order.
	PublishTrackingUpdate(ctx context.Context, aggregate *order.Order) error
}
