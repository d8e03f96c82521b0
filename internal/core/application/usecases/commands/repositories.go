// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"onlineshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the slice of the unit of work it actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// StockLedgerFactory provides access to the stock ledger within a transaction.
	StockLedgerFactory interface {
		StockLedger() ports.StockLedger
	}

	// CustomerRegistryFactory provides access to customer resolution within a transaction.
	CustomerRegistryFactory interface {
		CustomerRegistry() ports.CustomerRegistry
	}

	// OrderUoW manages transactions for order-only lifecycle operations
	// (deliver, cancel), which touch nothing but the order's status.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReturnOrderUoW manages transactions for order returns, which update the
	// order status and release stock in the same transaction.
	ReturnOrderUoW interface {
		TxManager
		OrderRepoFactory
		StockLedgerFactory
	}

	// ReturnOrderUoWFactory creates new return unit of work instances.
	ReturnOrderUoWFactory interface {
		Create() ReturnOrderUoW
	}

	// PlaceOrderUoW manages transactions for order placement, which resolves
	// the customer and products, reserves stock for every line, and persists
	// the order — all atomically.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		StockLedgerFactory
		CustomerRegistryFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
