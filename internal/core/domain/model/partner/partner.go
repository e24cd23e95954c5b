// Package partner provides the DeliveryPartner aggregate: the courier account
// that confirms orders and reports live tracking updates. Partner accounts are
// managed elsewhere; this service reads them to authorize status changes.
package partner

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrDeliveryPartnerIsNotConstructed is returned when a DeliveryPartner was
// not created through the NewDeliveryPartner factory method.
var ErrDeliveryPartnerIsNotConstructed = errors.New(
	"DeliveryPartner must be created via NewDeliveryPartner constructor")

// DeliveryPartner is the aggregate for a courier account.
type DeliveryPartner struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

// NewDeliveryPartner creates a DeliveryPartner with validation.
func NewDeliveryPartner(id kernel.UUID, name string) (*DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &DeliveryPartner{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the DeliveryPartner instance was properly constructed.
func (p *DeliveryPartner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrDeliveryPartnerIsNotConstructed
	}
	return nil
}

// ID returns the delivery partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// Name returns the delivery partner's display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}
