package commands

import (
	"errors"

	"onlineshop/internal/core/domain/model/product"
	"onlineshop/internal/pkg/guard"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// DeleteProductCommand represents a request to remove a product from the
// catalog, addressed by its merchant code.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a catalog product.
func NewDeleteProductCommand(code string) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return DeleteProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// Code returns the merchant code of the product to delete.
func (c DeleteProductCommand) Code() string {
	return c.code
}

func (c *DeleteProductCommand) setCode(code string) error {
	if code == "" {
		return product.ErrCodeIsRequired
	}
	c.code = code
	return nil
}
