package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

// NoAddressFallback is the address recorded when the source document carries none.
const NoAddressFallback = "No address available"

// ErrLocationSnapshotIsNotConstructed is returned when a LocationSnapshot was
// not created through NewLocationSnapshot.
var ErrLocationSnapshotIsNotConstructed = errors.New(
	"LocationSnapshot must be created via NewLocationSnapshot constructor")

// LocationSnapshot is a point-in-time copy of a location and address.
// Snapshots are frozen into the order at creation or confirmation time and are
// never re-resolved: later changes to the customer, branch or partner do not
// retroactively affect an existing order.
//
// The geo point is optional. A delivery partner confirming an order may not
// have a live location fix yet; the snapshot then carries only the address,
// which itself may be empty.
type LocationSnapshot struct { //nolint:recvcheck //using for validation
	point   *kernel.GeoPoint
	address string

	guard guard.ConstructorGuard
}

// NewLocationSnapshot creates a location snapshot.
// A non-nil point must be a properly constructed GeoPoint; the address is
// stored verbatim, including the empty string.
func NewLocationSnapshot(point *kernel.GeoPoint, address string) (LocationSnapshot, error) {
	if point != nil {
		if err := point.Validate(); err != nil {
			return LocationSnapshot{}, err
		}
	}

	return LocationSnapshot{
		point:   point,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created through the constructor.
func (l LocationSnapshot) Validate() error {
	return l.guard.Validate(ErrLocationSnapshotIsNotConstructed)
}

// Point returns the captured geo point, or nil when no fix was available.
func (l LocationSnapshot) Point() *kernel.GeoPoint {
	return l.point
}

// Address returns the captured address. May be empty.
func (l LocationSnapshot) Address() string {
	return l.address
}
