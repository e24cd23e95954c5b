// Package customer provides the Customer aggregate: the account that places
// orders. Customers are managed by the accounts service; this service reads
// them to resolve order references and to snapshot the delivery location.
package customer

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate for a buyer account. The live location and address
// are the values copied into an order's delivery snapshot at creation time;
// either may be absent for customers who never shared them.
type Customer struct {
	id            kernel.UUID
	liveLocation  *kernel.GeoPoint
	address       string
	isConstructed bool
}

// NewCustomer creates a Customer with validation.
// The live location is optional; when present it must be a properly
// constructed GeoPoint. The address may be empty.
func NewCustomer(id kernel.UUID, liveLocation *kernel.GeoPoint, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if liveLocation != nil {
		if err := liveLocation.Validate(); err != nil {
			return nil, err
		}
	}

	return &Customer{
		id:            id,
		liveLocation:  liveLocation,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// LiveLocation returns the customer's last known location, or nil.
func (c *Customer) LiveLocation() *kernel.GeoPoint {
	return c.liveLocation
}

// Address returns the customer's address. May be empty.
func (c *Customer) Address() string {
	return c.address
}
