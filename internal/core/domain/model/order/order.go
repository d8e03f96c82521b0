package order

import (
	"errors"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order is placed without any line.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")
)

// Order is the aggregate root of the order lifecycle. It holds the customer
// reference, the frozen set of order lines, and the current lifecycle status.
//
// Invariants:
//   - Must have valid order and customer identifiers
//   - Must contain at least one line; lines never change after creation
//   - Status transitions follow the state machine encoded in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID kernel.UUID

	// lines are the reserved positions, frozen at placement time
	lines []Line

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Created status. This is the only way to place
// an order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the owning customer
//   - lines: at least one validated Line
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, customerID kernel.UUID, lines []Line) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// All parameters are validated; the status must be one an order may legally hold.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, lines []Line, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLines(lines),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory
// method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns a copy of the order's lines. The copy keeps the aggregate's
// lines frozen: callers cannot alter reserved quantities.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Deliver marks the order as delivered.
//
// Fails with ErrOrderCanceled if the order was canceled, or with
// ErrOrderAlreadyDelivered if it was already delivered or returned.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as canceled.
//
// Fails with ErrOrderAlreadyDelivered once the order has been delivered,
// or with ErrOrderCanceled if it is already canceled.
//
// Canceling does not release reserved stock; only Return does.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Return marks a delivered order as returned. The caller is responsible for
// releasing each line's quantity back to stock in the same transaction.
//
// Fails with ErrOrderNotDeliveredYet before delivery and with ErrOrderCanceled
// for canceled orders.
func (o *Order) Return() error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
