// Package branch provides the Branch aggregate: a store location that
// fulfills orders. A branch carries a live location, an address, and the set
// of delivery partners associated with it.
package branch

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrBranchIsNotConstructed is returned when a Branch was not created
	// through the NewBranch factory method.
	ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")

	// ErrPartnerAlreadyAttached is returned when attaching a delivery partner
	// that is already associated with the branch.
	ErrPartnerAlreadyAttached = errors.New("delivery partner is already attached to branch")
)

// Branch is the aggregate for a store location. The live location and address
// are the values copied into an order's pickup snapshot at creation time.
type Branch struct {
	id                 kernel.UUID
	name               string
	liveLocation       *kernel.GeoPoint
	address            string
	deliveryPartnerIDs []kernel.UUID
	isConstructed      bool
}

// NewBranch creates a Branch with validation.
// The name is required. The live location is optional; when present it must
// be a properly constructed GeoPoint. Delivery partner IDs must be unique.
func NewBranch(
	id kernel.UUID,
	name string,
	liveLocation *kernel.GeoPoint,
	address string,
	deliveryPartnerIDs []kernel.UUID,
) (*Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	if liveLocation != nil {
		if err := liveLocation.Validate(); err != nil {
			return nil, err
		}
	}

	branch := &Branch{
		id:            id,
		name:          name,
		liveLocation:  liveLocation,
		address:       address,
		isConstructed: true,
	}

	for _, partnerID := range deliveryPartnerIDs {
		if err := branch.AttachDeliveryPartner(partnerID); err != nil {
			return nil, err
		}
	}

	return branch, nil
}

// Validate ensures the Branch instance was properly constructed.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Name returns the branch name.
func (b *Branch) Name() string {
	return b.name
}

// LiveLocation returns the branch's location, or nil.
func (b *Branch) LiveLocation() *kernel.GeoPoint {
	return b.liveLocation
}

// Address returns the branch address. May be empty.
func (b *Branch) Address() string {
	return b.address
}

// DeliveryPartners returns the IDs of delivery partners associated with the branch.
func (b *Branch) DeliveryPartners() []kernel.UUID {
	return b.deliveryPartnerIDs
}

// AttachDeliveryPartner associates a delivery partner with the branch.
// Each partner may be attached at most once.
func (b *Branch) AttachDeliveryPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	for _, existing := range b.deliveryPartnerIDs {
		if existing.IsEqual(partnerID) {
			return ErrPartnerAlreadyAttached
		}
	}

	b.deliveryPartnerIDs = append(b.deliveryPartnerIDs, partnerID)
	return nil
}
