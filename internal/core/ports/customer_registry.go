package ports

import (
	"context"

	"onlineshop/internal/core/domain/model/kernel"
)

// CustomerRegistry resolves customer identifiers. The core does not own
// customer data; it only needs to know whether the customer placing an order
// exists. Authorization is assumed to have happened before the core is invoked.
type CustomerRegistry interface {
	// Exists reports whether a customer with the given id is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
