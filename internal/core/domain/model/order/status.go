package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Available --> Confirmed --> Arriving --> Delivered
//	    |             |            |
//	    +-------------+------------+--> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are accepted.
// Status is a value object that validates state transitions and provides
// string representations for persistence and the HTTP API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status when an order is first created.
	// Orders in this status are waiting for a delivery partner to confirm them.
	Available

	// Confirmed indicates a delivery partner has taken the order.
	Confirmed

	// Arriving indicates the delivery partner is en route to the customer.
	Arriving

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned or expired. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Confirmed: "confirmed",
		Arriving:  "arriving",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Confirmed: "confirmed",
		Arriving:  "arriving",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire representation into a Status.
// Returns an error for anything outside the fixed status set; callers never
// get to persist a free-form status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values outside the defined set are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateConfirm checks if the status allows confirmation without performing
// the transition. Only Available orders can be confirmed.
func (s Status) ValidateConfirm() error {
	if s != Available {
		return ErrOrderIsNotAvailable
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Available -> Confirmed
//
// Any other current status returns ErrOrderIsNotAvailable.
func (s Status) Confirm() (Status, error) {
	if err := s.ValidateConfirm(); err != nil {
		return 0, err
	}

	return Confirmed, nil
}

// Transition moves the status to next.
//
// Rules:
//   - the current status must not be terminal (Delivered or Cancelled)
//   - next must be a valid status other than Available (orders never return
//     to the unassigned pool once a partner holds them)
//
// Returns the new status, or an error describing the rejected transition.
func (s Status) Transition(next Status) (Status, error) {
	if s.IsTerminal() {
		return 0, ErrOrderCannotBeUpdated
	}

	if err := next.Validate(); err != nil {
		return 0, err
	}

	if next == Available {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("order cannot return to %s", next))
	}

	return next, nil
}
