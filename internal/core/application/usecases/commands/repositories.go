// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and (for state transitions) notification after commit.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// BranchRepoFactory provides access to the branch repository within a transaction.
	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	// PartnerRepoFactory provides access to the delivery partner repository
	// within a transaction.
	PartnerRepoFactory interface {
		DeliveryPartnerRepository() ports.DeliveryPartnerRepository
	}

	// CreateOrderUoW manages transactions for order creation, which resolves
	// customer and branch references before inserting the order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		BranchRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// PartnerOrderUoW manages transactions for partner-initiated order
	// mutations (confirmation and status updates), which resolve the calling
	// partner before touching the order.
	PartnerOrderUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// PartnerOrderUoWFactory creates new partner-mutation unit of work instances.
	PartnerOrderUoWFactory interface {
		Create() PartnerOrderUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
