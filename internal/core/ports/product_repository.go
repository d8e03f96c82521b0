package ports

import (
	"context"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Stock mutation is deliberately not part of this interface; it goes through
// the StockLedger so every change is a single atomic conditional update.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and its code must be unique.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists catalog changes (name, description, price) of an
	// existing product. The available quantity is not written by Update.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByCode retrieves a product aggregate by its unique merchant code.
	// Returns an errs.ObjectNotFoundError when absent.
	GetByCode(ctx context.Context, code string) (*product.Product, error)

	// Delete removes a product aggregate from storage.
	// Returns an errs.ObjectNotFoundError when no such product exists.
	Delete(ctx context.Context, aggregate *product.Product) error
}
