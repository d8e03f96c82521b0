package commands

import (
	"context"
	"errors"

	"onlineshop/internal/core/domain/model/order"
	"onlineshop/internal/core/domain/model/product"
	"onlineshop/internal/core/ports"
	"onlineshop/internal/pkg/errs"
)

// Caller-facing failures of order placement. Each maps to a distinct
// message/code at the HTTP boundary.
var (
	// ErrCustomerNotFound is returned when the ordering customer is not registered.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrProductNotFound is returned when an order line references an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotEnoughStock is returned when a line's quantity cannot be reserved.
	ErrNotEnoughStock = errors.New("not enough stock")
)

// PlaceOrderCommandHandler handles the business logic for placing an order:
// resolving the customer and every product, reserving stock for all lines,
// and persisting the order in Created status.
//
// The whole operation runs in one transaction. Stock for the lines is reserved
// all-or-none: if any line cannot be reserved — including under a race lost
// after the read-only pre-check — the transaction rolls back and no partial
// reservation survives.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, events)
//	cmd, _ := NewPlaceOrderCommand(orderID, customerID, items)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    switch {
//	    case errors.Is(err, ErrNotEnoughStock):
//	        // a product ran out
//	    case errors.Is(err, ErrProductNotFound):
//	        // unknown product referenced
//	    }
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence and an event
// publisher for the order-created notification.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	events ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the place-order command.
//
// Failure order follows the validation sequence: unknown customer, unknown
// product, insufficient stock. The pre-check pass over all lines completes
// before any stock is touched, so a request that is doomed on its last line
// does not reserve anything for its first.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.CustomerRegistry().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !exists {
		return ErrCustomerNotFound
	}

	productRepo := uow.ProductRepository()
	ledger := uow.StockLedger()
	lines := cmd.Lines()

	for _, line := range lines {
		if _, getErr := productRepo.Get(ctx, line.ProductID()); getErr != nil {
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				return ErrProductNotFound
			}
			return getErr
		}

		ok, stockErr := ledger.HasSufficientStock(ctx, line.ProductID(), line.Quantity())
		if stockErr != nil {
			return stockErr
		}
		if !ok {
			return ErrNotEnoughStock
		}
	}

	for _, line := range lines {
		if reserveErr := ledger.Reserve(ctx, line.ProductID(), line.Quantity()); reserveErr != nil {
			// Lost a race after the pre-check; the deferred rollback undoes
			// reservations already applied for earlier lines.
			if errors.Is(reserveErr, product.ErrInsufficientStock) {
				return ErrNotEnoughStock
			}
			return reserveErr
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort; the publisher logs its own failures.
	_ = h.events.Publish(ctx, ports.OrderEvent{
		Type:         ports.OrderCreatedEvent,
		OrderID:      cmd.OrderID(),
		ActingUserID: cmd.CustomerID(),
	})

	return nil
}
