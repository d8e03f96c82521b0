package commands

import (
	"errors"
	"fmt"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/product"
	"onlineshop/internal/pkg/errs"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to add a product to the catalog
// with an initial stock level.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	code        string
	name        string
	description string
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Code and name must be non-empty, the price valid, and the initial stock
// not negative.
func NewCreateProductCommand(
	productID kernel.UUID,
	code string,
	name string,
	description string,
	price kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setCode(code),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier the product will be created under.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Code returns the unique product code.
func (c CreateProductCommand) Code() string {
	return c.code
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product's description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial available quantity.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setCode(code string) error {
	if code == "" {
		return product.ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return product.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}
