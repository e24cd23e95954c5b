package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"
)

// ConfirmOrderCommandHandler handles the business logic for order confirmation.
// Verifies the calling delivery partner exists, transitions the order from
// "available" to "confirmed" with a status-guarded write, and announces the
// confirmation on the order's real-time channel after the transaction commits.
//
// The guarded write closes the race between two partners confirming the same
// order: both may read "available", but only the first write matches the
// guard; the loser's write affects no rows and fails with
// errs.ErrVersionIsInvalid, so at most one partner ends up assigned.
type ConfirmOrderCommandHandler struct {
	uowFactory PartnerOrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires a PartnerOrderUoWFactory for transactional persistence and an
// OrderNotifier for the post-commit broadcast.
func NewConfirmOrderCommandHandler(
	uowFactory PartnerOrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "confirm_order_handler"),
	}
}

// Handle processes the order confirmation command.
//
// Preconditions: the delivery partner and the order must exist (missing either
// yields errs.ObjectNotFoundError), and the order must be in "available"
// status (order.ErrOrderIsNotAvailable otherwise). The orderConfirmed event is
// published only after the commit succeeds; a publish failure is logged but
// never fails the already-durable confirmation.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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
	confirmingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previousStatus := confirmingOrder.Status()
	if err = confirmingOrder.Confirm(cmd.PartnerID(), cmd.CourierLocation()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatusGuard(ctx, confirmingOrder, previousStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.PublishOrderConfirmed(ctx, confirmingOrder); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish order confirmed event",
			"order_id", confirmingOrder.ID().String(), "error", err)
	}

	return nil
}
