package product

import (
	"errors"
	"fmt"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrCodeIsRequired is returned when attempting to create a product without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrInsufficientStock is returned when a reservation asks for more units
	// than are currently available.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a catalog item together with its single stock counter.
// It is an aggregate root managing product identity, pricing, and the stock
// invariant: the available quantity is never negative.
//
// Stock changes only through Reserve (decrement, at order placement) and
// Release (increment, at order return). Both mirror the conditional update the
// persistence layer performs, so the rules can be exercised without a database.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// code is the human-facing unique product code
	code string
	// name is the display name of the product
	name string
	// description is optional free-form text
	description string
	// price is the unit price with its currency
	price kernel.Money
	// availableQuantity is the number of units in stock, never negative
	availableQuantity int
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the given attributes.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - code: unique product code (must be non-empty)
//   - name: display name (must be non-empty)
//   - description: optional free-form text
//   - price: validated unit price
//   - availableQuantity: initial stock (must not be negative)
//
// Returns the product or an aggregated validation error.
func NewProduct(
	id kernel.UUID,
	code string,
	name string,
	description string,
	price kernel.Money,
	availableQuantity int,
) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setCode(code),
		product.setName(name),
		product.setPrice(price),
		product.setAvailableQuantity(availableQuantity),
	); err != nil {
		return nil, err
	}

	product.description = description
	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Code returns the unique product code.
func (p *Product) Code() string {
	return p.code
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// AvailableQuantity returns the number of units currently in stock.
func (p *Product) AvailableQuantity() int {
	return p.availableQuantity
}

// HasSufficientStock reports whether quantity units could be reserved right now.
// This is a read-only pre-check; Reserve re-checks at mutation time.
func (p *Product) HasSufficientStock(quantity int) bool {
	return quantity > 0 && p.availableQuantity >= quantity
}

// Reserve decrements the available quantity by quantity units.
//
// Fails with ErrInsufficientStock if fewer than quantity units are available
// at the moment of the update, keeping the stock counter non-negative.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.availableQuantity < quantity {
		return ErrInsufficientStock
	}

	p.availableQuantity -= quantity
	return nil
}

// Release returns quantity units to stock, undoing a prior reservation.
// No upper bound is enforced.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.availableQuantity += quantity
	return nil
}

// Rename updates the display name and description of the product.
func (p *Product) Rename(name string, description string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.description = description
	return nil
}

// ChangePrice updates the unit price of the product.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setAvailableQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("available quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	p.availableQuantity = quantity
	return nil
}
