package commands

import (
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
)

// DeliverOrderCommand represents a request to mark an order as delivered.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actingUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver an order.
// Both the order id and the acting user id must be valid.
func NewDeliverOrderCommand(orderID kernel.UUID, actingUserID kernel.UUID) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActingUserID(actingUserID),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingUserID returns the identifier of the user performing the delivery.
func (c DeliverOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("acting user id", err)
	}
	c.actingUserID = actingUserID
	return nil
}
