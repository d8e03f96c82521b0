package queries

import (
	"errors"
	"fmt"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
)

// GetLowStockProductsQuery retrieves products whose available quantity has
// fallen to or below a threshold. Used by the replenishment monitoring job and
// exposed for operational dashboards.
type GetLowStockProductsQuery struct { //nolint:recvcheck //using for validation
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products at or below the
// given stock threshold. The threshold must not be negative; zero lists only
// sold-out products.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold < 0 {
		return GetLowStockProductsQuery{}, errs.NewValueIsInvalidErrorWithCause("threshold is invalid",
			fmt.Errorf("%d is negative", threshold))
	}

	return GetLowStockProductsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the stock level at or below which products are reported.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}

// GetLowStockProductsQueryResponse represents a product running low on stock.
type GetLowStockProductsQueryResponse struct {
	ID                kernel.UUID
	Code              string
	Name              string
	AvailableQuantity int
}
