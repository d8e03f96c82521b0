package order

import (
	"errors"
	"fmt"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single position of an order: a product reference together with the
// quantity reserved for it at order-placement time.
//
// Line is immutable. Its quantity is frozen when the order is placed and is the
// exact amount released back to stock if the order is later returned.
type Line struct {
	// productID references the reserved product
	productID kernel.UUID

	// quantity is the number of units reserved (always positive)
	quantity int

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates an order line. The product ID must be valid and the quantity
// must be positive.
func NewLine(productID kernel.UUID, quantity int) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the reserved product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of units reserved for this line.
func (l Line) Quantity() int {
	return l.quantity
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
