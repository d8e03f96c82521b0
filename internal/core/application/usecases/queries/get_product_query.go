package queries

import (
	"errors"
	"strings"

	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)

	// ErrCodeIsRequired is returned when looking up a product without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// GetProductQuery retrieves a single catalog product by its merchant code.
//
// Example:
//
//	query, err := NewGetProductQuery("SKU-001")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetProductQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetProductQuery struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for the product with the given code.
func NewGetProductQuery(code string) (GetProductQuery, error) {
	if strings.TrimSpace(code) == "" {
		return GetProductQuery{}, ErrCodeIsRequired
	}

	return GetProductQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// Code returns the merchant code of the product to fetch.
func (q GetProductQuery) Code() string {
	return q.code
}
