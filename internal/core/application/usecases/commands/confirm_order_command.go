package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand represents a delivery partner taking an available order.
// The courier location is optional: a partner may confirm before the first
// position fix is reported.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	partnerID       kernel.UUID
	courierLocation *order.LocationSnapshot

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command for a partner to confirm an order.
// Both identifiers must be valid; a non-nil courier location must be a
// properly constructed snapshot.
func NewConfirmOrderCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
	courierLocation *order.LocationSnapshot,
) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setOrderID(orderID),
		confirmCommand.setPartnerID(partnerID),
		confirmCommand.setCourierLocation(courierLocation),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the authenticated delivery partner.
func (c ConfirmOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// CourierLocation returns the partner's reported location, or nil.
func (c ConfirmOrderCommand) CourierLocation() *order.LocationSnapshot {
	return c.courierLocation
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *ConfirmOrderCommand) setCourierLocation(courierLocation *order.LocationSnapshot) error {
	if courierLocation != nil {
		if err := courierLocation.Validate(); err != nil {
			return err
		}
	}

	c.courierLocation = courierLocation
	return nil
}
