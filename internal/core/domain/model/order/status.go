package order

import (
	"errors"
	"fmt"

	"onlineshop/internal/pkg/errs"
)

// Lifecycle errors returned by status transitions. Each maps to a distinct
// caller-facing failure at the HTTP boundary.
var (
	// ErrOrderAlreadyDelivered is returned when an action requires the order
	// not to have been delivered, but it already was.
	ErrOrderAlreadyDelivered = errors.New("order has already been delivered")

	// ErrOrderCanceled is returned when an action is attempted on a canceled order.
	ErrOrderCanceled = errors.New("order has been canceled")

	// ErrOrderNotDeliveredYet is returned when a return is attempted before delivery.
	ErrOrderNotDeliveredYet = errors.New("order has not been delivered yet")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Created ──deliver──> Delivered ──return──> Returned
//	   │
//	   └─────cancel────> Canceled
//
// Canceled and Returned are terminal: no further transition is permitted.
// The machine is pure; given the current state and an action it returns
// either the next state or a typed failure, without any I/O.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when an order is placed.
	// Stock for every line has been reserved at this point.
	Created

	// Delivered indicates the order reached the customer.
	Delivered

	// Canceled indicates the order was canceled before delivery.
	// Terminal. Reserved stock is not released (see package docs).
	Canceled

	// Returned indicates a delivered order was sent back and its
	// stock restored. Terminal.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Delivered: "Delivered",
		Canceled:  "Canceled",
		Returned:  "Returned",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Delivered: "Delivered",
		Canceled:  "Canceled",
		Returned:  "Returned",
	}
}

// Validate checks if the Status value is one an order may legally hold.
// Unknown (0) and any other values are invalid. Used when reconstructing
// orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Canceled || s == Returned
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Created -> Delivered
//
// Failures:
//   - Canceled: ErrOrderCanceled (a canceled order can never be delivered)
//   - Delivered, Returned: ErrOrderAlreadyDelivered (an order is delivered once)
func (s Status) Deliver() (Status, error) {
	switch s {
	case Created:
		return Delivered, nil
	case Canceled:
		return 0, ErrOrderCanceled
	case Delivered, Returned:
		return 0, ErrOrderAlreadyDelivered
	default:
		return 0, s.Validate()
	}
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Created -> Canceled
//
// Failures:
//   - Delivered, Returned: ErrOrderAlreadyDelivered (too late to cancel)
//   - Canceled: ErrOrderCanceled (already canceled, terminal)
func (s Status) Cancel() (Status, error) {
	switch s {
	case Created:
		return Canceled, nil
	case Delivered, Returned:
		return 0, ErrOrderAlreadyDelivered
	case Canceled:
		return 0, ErrOrderCanceled
	default:
		return 0, s.Validate()
	}
}

// Return transitions the status to Returned.
//
// Valid transitions:
//   - Delivered -> Returned
//
// Failures:
//   - Created: ErrOrderNotDeliveredYet
//   - Canceled: ErrOrderCanceled
//   - Returned: ErrOrderNotDeliveredYet (the delivery was already undone;
//     a second return would restock twice)
func (s Status) Return() (Status, error) {
	switch s {
	case Delivered:
		return Returned, nil
	case Created, Returned:
		return 0, ErrOrderNotDeliveredYet
	case Canceled:
		return 0, ErrOrderCanceled
	default:
		return 0, s.Validate()
	}
}
