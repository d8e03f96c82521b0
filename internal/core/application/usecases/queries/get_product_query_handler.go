package queries

import (
	"context"
	"database/sql"
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single product read model from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for product lookups by code.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve the product with the requested code.
// Returns an errs.ObjectNotFoundError when no such product exists.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductsQueryResponse{}, err
	}

	var resp GetProductsQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			description,
			price_amount,
			price_currency,
			available_quantity
		FROM products
		WHERE code = ?
	`, query.Code()).Row()

	err := row.Scan(
		&id,
		&resp.Code,
		&resp.Name,
		&resp.Description,
		&resp.PriceAmount,
		&resp.PriceCurrency,
		&resp.AvailableQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductsQueryResponse{}, errs.NewObjectNotFoundError("product", query.Code())
	}
	if err != nil {
		return GetProductsQueryResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetProductsQueryResponse{}, err
	}
	resp.ID = productID

	return resp, nil
}
