package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders matching an optional set of filters.
// Every filter is independent: any combination of status, customer, delivery
// partner and branch may be supplied, and a nil filter matches all orders.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status     *order.Status
	customerID *kernel.UUID
	partnerID  *kernel.UUID
	branchID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve orders. All filters are
// optional; non-nil filters are validated up front so an invalid status or a
// malformed ID is rejected before touching the database.
func NewGetOrdersQuery(
	status *order.Status,
	customerID *kernel.UUID,
	partnerID *kernel.UUID,
	branchID *kernel.UUID,
) (GetOrdersQuery, error) {
	ordersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ordersQuery.setStatus(status),
		ordersQuery.setCustomerID(customerID),
		ordersQuery.setPartnerID(partnerID),
		ordersQuery.setBranchID(branchID),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when not filtering by status.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, or nil.
func (q GetOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// PartnerID returns the delivery partner filter, or nil.
func (q GetOrdersQuery) PartnerID() *kernel.UUID {
	return q.partnerID
}

// BranchID returns the branch filter, or nil.
func (q GetOrdersQuery) BranchID() *kernel.UUID {
	return q.branchID
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *GetOrdersQuery) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	q.customerID = customerID
	return nil
}

func (q *GetOrdersQuery) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}

	q.partnerID = partnerID
	return nil
}

func (q *GetOrdersQuery) setBranchID(branchID *kernel.UUID) error {
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return err
		}
	}

	q.branchID = branchID
	return nil
}
