package commands

import (
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrReturnOrderCommandIsNotConstructed = errors.New(
		"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
	)
)

// ReturnOrderCommand represents a request to return a delivered order.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actingUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return an order.
// Both the order id and the acting user id must be valid.
func NewReturnOrderCommand(orderID kernel.UUID, actingUserID kernel.UUID) (ReturnOrderCommand, error) {
	cmd := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActingUserID(actingUserID),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to return.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingUserID returns the identifier of the user requesting the return.
func (c ReturnOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReturnOrderCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("acting user id", err)
	}
	c.actingUserID = actingUserID
	return nil
}
