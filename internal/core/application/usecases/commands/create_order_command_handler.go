package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the customer and branch references, freezes their current live
// location and address into the order's delivery and pickup snapshots, and
// persists the order in "available" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, branchID, items, 24.50)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is persisted and awaiting a delivery partner
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the saved order.
//
// The customer and branch must both exist; either missing yields an
// errs.ObjectNotFoundError. Their live location and address are copied into
// the order's snapshots, with the address falling back to
// order.NoAddressFallback when the source document carries none. Later changes
// to the customer or branch never affect the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderCustomer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	orderBranch, err := uow.BranchRepository().Get(ctx, cmd.BranchID())
	if err != nil {
		return nil, err
	}

	deliveryLocation, err := order.NewLocationSnapshot(
		orderCustomer.LiveLocation(),
		addressOrFallback(orderCustomer.Address()),
	)
	if err != nil {
		return nil, err
	}

	pickupLocation, err := order.NewLocationSnapshot(
		orderBranch.LiveLocation(),
		addressOrFallback(orderBranch.Address()),
	)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.BranchID(),
		orderBranch.Name(),
		cmd.Items(),
		cmd.TotalPrice(),
		deliveryLocation,
		pickupLocation,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

func addressOrFallback(address string) string {
	if address == "" {
		return order.NoAddressFallback
	}
	return address
}
