// Package ports defines the contracts between the application core and its
// collaborators: repositories, the stock ledger, the unit of work, and the
// lifecycle event publisher. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// all of its lines. Returns an errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's current status, guarded by the
	// status the caller read before applying the transition. If a concurrent
	// transaction already moved the order out of the expected status, no row
	// is updated and an errs.VersionIsInvalidError is returned, so two
	// concurrent lifecycle calls on the same order cannot both succeed.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
