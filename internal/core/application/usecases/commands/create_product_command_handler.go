package commands

import (
	"context"
	"errors"

	"onlineshop/internal/core/domain/model/product"
	"onlineshop/internal/pkg/errs"
)

// ErrProductAlreadyExists is returned when creating a product whose ID or code
// is already taken.
var ErrProductAlreadyExists = errors.New("product already exists")

// CreateProductCommandHandler handles registering a new catalog product with
// an initial stock level.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create-product command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Code(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Stock(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	if _, getErr := productRepo.Get(ctx, cmd.ProductID()); getErr == nil {
		return ErrProductAlreadyExists
	} else if !errors.Is(getErr, errs.ErrObjectNotFound) {
		return getErr
	}

	if err = productRepo.Add(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
