package queries

import (
	"context"
	"database/sql"
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/order"
	"onlineshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order and its lines.
// Returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var orderID, customerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&orderID, &customerID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = id

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID = custID
	resp.Status = order.Status(status).String()

	lines, err := h.fetchLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderQueryHandler) fetchLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryLineResponse, error) {
	lines := make([]GetOrderQueryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp GetOrderQueryLineResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &lineResp.Quantity); err != nil {
			return nil, err
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		lineResp.ProductID = pid
		lines = append(lines, lineResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
