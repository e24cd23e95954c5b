package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a live tracking update from the
// delivery partner assigned to an order: a status transition together with
// the partner's current location.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	partnerID       kernel.UUID
	status          order.Status
	courierLocation *order.LocationSnapshot

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// The target status must be one of the fixed status values; free-form strings
// are rejected before they ever reach the domain.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
	status order.Status,
	courierLocation *order.LocationSnapshot,
) (UpdateOrderStatusCommand, error) {
	updateCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setPartnerID(partnerID),
		updateCommand.setStatus(status),
		updateCommand.setCourierLocation(courierLocation),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the authenticated delivery partner.
func (c UpdateOrderStatusCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// CourierLocation returns the partner's reported location, or nil.
func (c UpdateOrderStatusCommand) CourierLocation() *order.LocationSnapshot {
	return c.courierLocation
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setCourierLocation(courierLocation *order.LocationSnapshot) error {
	if courierLocation != nil {
		if err := courierLocation.Validate(); err != nil {
			return err
		}
	}

	c.courierLocation = courierLocation
	return nil
}
