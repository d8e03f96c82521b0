package commands

import (
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/order"
	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderItem is one requested position of a new order: a product and the
// quantity to reserve for it.
type PlaceOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a request to place a new order for a customer.
// The items are validated and frozen into order lines at construction time.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, []PlaceOrderItem{
//	    {ProductID: keyboardID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []order.Line

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that both identifiers are valid, that at least one item is
// requested, and that every item has a valid product id and positive quantity.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []PlaceOrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the validated order lines built from the requested items.
func (c PlaceOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setLines(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoLines
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		line, err := order.NewLine(item.ProductID, item.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	c.lines = lines
	return nil
}
