package ports

import (
	"context"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its pending audit events.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and appends its
	// pending audit events. The write is conditional on the version the
	// aggregate was loaded with: a concurrent writer that got there first
	// causes errs.ErrConcurrentModification and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, audit log
	// included. Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every order that has not reached a terminal
	// status, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
