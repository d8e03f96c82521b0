package commands

import (
	"context"
	"errors"

	"onlineshop/internal/core/ports"
	"onlineshop/internal/pkg/errs"
)

// ErrOrderNotFound is returned when a lifecycle command references an order
// that does not exist.
var ErrOrderNotFound = errors.New("order not found")

// DeliverOrderCommandHandler drives the Created -> Delivered transition.
// The order's state is read, transitioned, and written back inside one
// transaction; the write is guarded by the status that was read, so a
// concurrent lifecycle call on the same order cannot also succeed.
//
// Example:
//
//	handler := NewDeliverOrderCommandHandler(uowFactory, events)
//	cmd, _ := NewDeliverOrderCommand(orderID, userID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderCanceled):
//	    // canceled orders cannot be delivered
//	case errors.Is(err, ErrOrderNotFound):
//	    // unknown order id
//	}
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the deliver-order command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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
	if err = ord.Deliver(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, ord, readStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort; the publisher logs its own failures.
	_ = h.events.Publish(ctx, ports.OrderEvent{
		Type:         ports.OrderDeliveredEvent,
		OrderID:      cmd.OrderID(),
		ActingUserID: cmd.ActingUserID(),
	})

	return nil
}
