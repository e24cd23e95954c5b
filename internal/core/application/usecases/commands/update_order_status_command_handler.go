package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles live tracking updates from delivery
// partners. Enforces that the caller is the partner assigned to the order and
// that terminal orders stay frozen, persists the transition with a
// status-guarded write, and broadcasts the update after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory PartnerOrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory PartnerOrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
//
// Preconditions: the delivery partner and the order must exist
// (errs.ObjectNotFoundError), the order must not be in a terminal status
// (order.ErrOrderCannotBeUpdated), and the caller must be the assigned
// partner (order.ErrNotAssignedDeliveryPartner). The liveTrackingUpdates
// event is published only after the commit succeeds.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DeliveryPartnerRepository().Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previousStatus := trackedOrder.Status()
	if err = trackedOrder.UpdateStatus(cmd.PartnerID(), cmd.Status(), cmd.CourierLocation()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatusGuard(ctx, trackedOrder, previousStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.PublishTrackingUpdate(ctx, trackedOrder); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish tracking update event",
			"order_id", trackedOrder.ID().String(), "error", err)
	}

	return nil
}
