package ports

import (
	"context"

	"ordering/internal/core/domain/model/branch"
	"ordering/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branch aggregates.
type BranchRepository interface {
	// Add persists a new branch aggregate to storage.
	Add(ctx context.Context, aggregate *branch.Branch) error

	// Update persists changes to an existing branch aggregate.
	Update(ctx context.Context, aggregate *branch.Branch) error

	// Get retrieves a branch aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)
}
