package ports

import (
	"context"

	"onlineshop/internal/core/domain/model/kernel"
)

// StockLedger is the single source of truth for product stock. It answers
// whether a quantity can be reserved and applies reservations and releases
// atomically, so concurrent reservations for the same product can never drive
// the available quantity below zero.
//
// Implementations must re-check availability at mutation time, not only at
// HasSufficientStock time: the read-only check is a courtesy pre-validation
// and its result may be stale by the time Reserve runs.
type StockLedger interface {
	// HasSufficientStock reports whether quantity units of the product are
	// currently available. Read-only; performs no reservation.
	HasSufficientStock(ctx context.Context, productID kernel.UUID, quantity int) (bool, error)

	// Reserve decrements the product's available quantity by quantity units.
	// Fails with product.ErrInsufficientStock if fewer units are available at
	// the moment of the atomic update.
	Reserve(ctx context.Context, productID kernel.UUID, quantity int) error

	// Release increments the product's available quantity by quantity units,
	// undoing a prior reservation. No upper bound is enforced.
	Release(ctx context.Context, productID kernel.UUID, quantity int) error
}
