// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read directly from the database,
// returning flat read models shaped for the transport layer.
package queries

import (
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetProductsQuery retrieves the whole product catalog with current stock.
//
// Example:
//
//	query := NewGetProductsQuery()
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get products: %w", err)
//	}
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve all products.
// This is a parameterless query that fetches the full catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents one catalog product with its current
// availability, as shown to API consumers.
type GetProductsQueryResponse struct {
	ID                kernel.UUID
	Code              string
	Name              string
	Description       string
	PriceAmount       int64
	PriceCurrency     string
	AvailableQuantity int
}
