package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWithStatusGuard persists changes only while the stored status
	// still equals expected. A stale write affects no rows and returns
	// errs.ErrVersionIsInvalid, closing the read-then-write race on
	// concurrent confirmations.
	UpdateWithStatusGuard(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAvailableOlderThan retrieves orders still in Available status
	// created before the given cutoff. Used by the stale-order expiry job.
	GetAllAvailableOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
