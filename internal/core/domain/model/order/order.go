package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsNotAvailable is returned when confirming an order that is not in
	// the Available status.
	ErrOrderIsNotAvailable = errors.New("order is not available")

	// ErrOrderCannotBeUpdated is returned when mutating an order whose status is
	// terminal (Delivered or Cancelled).
	ErrOrderCannotBeUpdated = errors.New("order cannot be updated")

	// ErrNotAssignedDeliveryPartner is returned when a delivery partner other
	// than the one assigned to the order attempts to update it.
	ErrNotAssignedDeliveryPartner = errors.New("delivery partner is not assigned to this order")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through confirmation by a
// delivery partner to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have valid order, customer, and branch identifiers
//   - Must contain at least one item; total price must not be negative
//   - Delivery and pickup locations are snapshots captured at creation time
//   - Only Available orders can be confirmed
//   - Terminal orders (Delivered, Cancelled) accept no further updates
//   - Only the assigned delivery partner may update the status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order (immutable)
	customerID kernel.UUID

	// branchID references the branch fulfilling the order
	branchID kernel.UUID

	// branchName is a snapshot of the branch name at creation time
	branchName string

	// items is the ordered sequence of order lines
	items []Item

	// totalPrice is the total in the platform currency
	totalPrice float64

	// deliveryLocation is the customer's location snapshot at creation time
	deliveryLocation LocationSnapshot

	// pickupLocation is the branch's location snapshot at creation time
	pickupLocation LocationSnapshot

	// status represents the current state in the order lifecycle
	status Status

	// deliveryPartnerID is the assigned partner's ID (nil until confirmation)
	deliveryPartnerID *kernel.UUID

	// courierLocation is the partner's last reported location (nil until confirmation)
	courierLocation *LocationSnapshot

	// createdAt is the creation timestamp, fixed when the order is first built
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Available status with validation.
// The delivery and pickup locations are snapshots of the customer's and
// branch's live location and address at this moment; they are copies, not live
// references.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	branchID kernel.UUID,
	branchName string,
	items []Item,
	totalPrice float64,
	deliveryLocation LocationSnapshot,
	pickupLocation LocationSnapshot,
) (*Order, error) {
	order := &Order{
		status:        Available,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setBranch(branchID, branchName),
		order.setItems(items),
		order.setTotalPrice(totalPrice),
		order.setDeliveryLocation(deliveryLocation),
		order.setPickupLocation(pickupLocation),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts any valid status together with the partner
// assignment, courier location and stored creation timestamp, and verifies
// their consistency: a partner is required for every status past Available and
// forbidden on Available orders.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	branchID kernel.UUID,
	branchName string,
	items []Item,
	totalPrice float64,
	deliveryLocation LocationSnapshot,
	pickupLocation LocationSnapshot,
	status Status,
	deliveryPartnerID *kernel.UUID,
	courierLocation *LocationSnapshot,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, branchID, branchName, items, totalPrice, deliveryLocation, pickupLocation)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if deliveryPartnerID == nil && status != Available && status != Cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("order is invalid",
			fmt.Errorf("%s order has no delivery partner", status))
	}

	if deliveryPartnerID != nil {
		if err = deliveryPartnerID.Validate(); err != nil {
			return nil, err
		}
	}

	if courierLocation != nil {
		if err = courierLocation.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.deliveryPartnerID = deliveryPartnerID
	order.courierLocation = courierLocation
	order.createdAt = createdAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// BranchID returns the identifier of the fulfilling branch.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// BranchName returns the branch name snapshot taken at creation time.
func (o *Order) BranchName() string {
	return o.branchName
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// DeliveryLocation returns the customer location snapshot.
func (o *Order) DeliveryLocation() LocationSnapshot {
	return o.deliveryLocation
}

// PickupLocation returns the branch location snapshot.
func (o *Order) PickupLocation() LocationSnapshot {
	return o.pickupLocation
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPartner returns the assigned delivery partner's ID.
// Returns nil if no partner has confirmed the order.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

// CourierLocation returns the delivery partner's last reported location.
// Returns nil before confirmation.
func (o *Order) CourierLocation() *LocationSnapshot {
	return o.courierLocation
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Confirm assigns the order to a delivery partner and moves it to Confirmed.
//
// Business rules:
//   - the partner ID must be valid
//   - the order must currently be Available (ErrOrderIsNotAvailable otherwise)
//
// The courier location is optional; a partner may confirm before reporting a
// position fix.
func (o *Order) Confirm(partnerID kernel.UUID, courierLocation *LocationSnapshot) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if courierLocation != nil {
		if err := courierLocation.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPartnerID = &partnerID
	o.courierLocation = courierLocation
	return nil
}

// UpdateStatus applies a live tracking update from the assigned delivery partner.
//
// Business rules:
//   - the order must not be in a terminal status (ErrOrderCannotBeUpdated)
//   - the caller must be the assigned partner (ErrNotAssignedDeliveryPartner)
//   - next must be a valid status other than Available
func (o *Order) UpdateStatus(partnerID kernel.UUID, next Status, courierLocation *LocationSnapshot) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return ErrOrderCannotBeUpdated
	}

	if o.deliveryPartnerID == nil || !o.deliveryPartnerID.IsEqual(partnerID) {
		return ErrNotAssignedDeliveryPartner
	}

	newStatus, err := o.status.Transition(next)
	if err != nil {
		return err
	}

	if courierLocation != nil {
		if err = courierLocation.Validate(); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.courierLocation = courierLocation
	return nil
}

// Cancel moves the order to Cancelled.
// Terminal orders cannot be cancelled again (ErrOrderCannotBeUpdated).
// Used by the stale-order expiry job and by partner-initiated cancellation.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return ErrOrderCannotBeUpdated
	}

	o.status = Cancelled
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBranch(branchID kernel.UUID, branchName string) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	if branchName == "" {
		return errs.NewValueIsRequiredError("branch name")
	}
	o.branchID = branchID
	o.branchName = branchName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%f is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setDeliveryLocation(loc LocationSnapshot) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = loc
	return nil
}

func (o *Order) setPickupLocation(loc LocationSnapshot) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	o.pickupLocation = loc
	return nil
}
