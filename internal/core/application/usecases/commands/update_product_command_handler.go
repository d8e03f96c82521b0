package commands

import (
	"context"
	"errors"

	"onlineshop/internal/pkg/errs"
)

// UpdateProductCommandHandler handles changing a product's name, description
// and price in one transaction.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-product command.
// Returns ErrProductNotFound if no product exists under the command's ID.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	prod, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err = prod.Rename(cmd.Name(), cmd.Description()); err != nil {
		return err
	}
	if err = prod.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, prod); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
