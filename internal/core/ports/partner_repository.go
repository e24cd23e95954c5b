package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/partner"
)

// DeliveryPartnerRepository defines the persistence contract for delivery
// partner aggregates.
type DeliveryPartnerRepository interface {
	// Add persists a new delivery partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a delivery partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)
}
