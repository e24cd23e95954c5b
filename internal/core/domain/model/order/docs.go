// Package order provides domain entities and business logic for order management
// in the ordering system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, snapshots, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: An order line referencing the external menu catalog
//   - LocationSnapshot: A point-in-time copy of a location and address
//
// Key business rules:
//   - Orders must have valid identifiers, at least one item, and location snapshots
//   - Status follows a defined workflow: available -> confirmed -> arriving -> delivered
//   - Delivered and cancelled orders accept no further changes
//   - Only the assigned delivery partner may update an order's status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
