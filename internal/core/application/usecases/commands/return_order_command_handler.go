package commands

import (
	"context"
	"errors"

	"onlineshop/internal/core/ports"
	"onlineshop/internal/pkg/errs"
)

// ReturnOrderCommandHandler drives the Delivered -> Returned transition and
// restores stock.
//
// The status change and the release of every line's quantity happen in the
// same transaction: either the order becomes Returned and all stock is back,
// or nothing changed. Each line is released exactly once, by the quantity
// reserved at placement time.
//
// Example:
//
//	handler := NewReturnOrderCommandHandler(uowFactory, events)
//	cmd, _ := NewReturnOrderCommand(orderID, userID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderNotDeliveredYet) {
//	    // only delivered orders can be returned
//	}
type ReturnOrderCommandHandler struct {
	uowFactory ReturnOrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewReturnOrderCommandHandler creates a handler for order returns.
// Requires a ReturnOrderUoWFactory so the status update and the stock release
// share a transaction.
func NewReturnOrderCommandHandler(
	uowFactory ReturnOrderUoWFactory,
	events ports.OrderEventPublisher,
) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the return-order command.
func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	readStatus := ord.Status()
	if err = ord.Return(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, ord, readStatus); err != nil {
		return err
	}

	ledger := uow.StockLedger()
	for _, line := range ord.Lines() {
		if err = ledger.Release(ctx, line.ProductID(), line.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort; the publisher logs its own failures.
	_ = h.events.Publish(ctx, ports.OrderEvent{
		Type:         ports.OrderReturnedEvent,
		OrderID:      cmd.OrderID(),
		ActingUserID: cmd.ActingUserID(),
	})

	return nil
}
