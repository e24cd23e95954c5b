package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ExpireStaleOrdersCommandHandler cancels orders left unconfirmed past their
// TTL. Runs from the scheduled expiry job; each order is cancelled with a
// status-guarded write so a confirmation racing the sweep always wins.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale order expiry.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels all orders still available past the TTL and returns how many
// were expired. An order confirmed between the read and the guarded write is
// skipped, not failed: the partner's confirmation takes precedence.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().Add(-cmd.TTL())

	staleOrders, err := orderRepo.GetAllAvailableOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, staleOrder := range staleOrders {
		if err = staleOrder.Cancel(); err != nil {
			return 0, err
		}

		err = orderRepo.UpdateWithStatusGuard(ctx, staleOrder, order.Available)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			continue
		}
		if err != nil {
			return 0, err
		}

		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
