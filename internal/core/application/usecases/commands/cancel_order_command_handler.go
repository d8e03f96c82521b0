package commands

import (
	"context"
	"errors"

	"onlineshop/internal/core/ports"
	"onlineshop/internal/pkg/errs"
)

// CancelOrderCommandHandler drives the Created -> Canceled transition.
//
// Canceling does not release the stock reserved at placement time; only a
// return does. The transition itself is guarded the same way as delivery, so
// a simultaneous deliver and cancel of the same order cannot both succeed.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the cancel-order command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = ord.Cancel(); err != nil {
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
		Type:         ports.OrderCanceledEvent,
		OrderID:      cmd.OrderID(),
		ActingUserID: cmd.ActingUserID(),
	})

	return nil
}
