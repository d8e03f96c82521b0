package commands

import (
	"context"
	"errors"

	"onlineshop/internal/pkg/errs"
)

// DeleteProductCommandHandler handles removing a product from the catalog.
//
// Deletion does not touch orders already placed for the product: their lines
// keep the product id they were frozen with.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete-product command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	prod, err := productRepo.GetByCode(ctx, cmd.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	if err = productRepo.Delete(ctx, prod); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
