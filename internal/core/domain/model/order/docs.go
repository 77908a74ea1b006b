// Package order provides domain entities and business logic for delivery order
// management. It implements the Order aggregate root with lifecycle management,
// an append-only audit log, and the settlement ledger for the three money
// tracks (ongkir, COD proceeds, dana talangan).
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Event: Immutable audit records appended by every mutating operation
//
// Key business rules:
//   - Order status follows a defined workflow: NEW -> ASSIGNED -> PICKUP -> DIKIRIM -> SELESAI
//   - CANCELLED and REJECTED are terminal branches reachable from any non-terminal status
//   - Repeating the current status is an idempotent no-op, never an error
//   - Terminal orders accept settlement mutations only
//   - Each money track is toggled only while its precondition holds
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
