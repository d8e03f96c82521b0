package productrepo

import (
	"context"
	"errors"
	"fmt"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/product"
	"onlineshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockLedger implements StockLedger using single conditional UPDATE
// statements against the products table. The availability check is part of the
// UPDATE's WHERE clause, so the database evaluates it atomically against the
// current row: two concurrent reservations can never both pass a check that
// only one of them can satisfy.
type GormStockLedger struct {
	db *gorm.DB
}

// NewGormStockLedger creates a stock ledger over the given connection.
// When db is a transaction, the reservation holds the row lock until commit,
// which is what makes multi-line order placement all-or-none.
func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// HasSufficientStock reports whether quantity units are currently available.
// Read-only pre-check; Reserve re-checks inside the UPDATE.
func (l *GormStockLedger) HasSufficientStock(
	ctx context.Context,
	productID kernel.UUID,
	quantity int,
) (bool, error) {
	if err := productID.Validate(); err != nil {
		return false, err
	}
	if quantity <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	var dto ProductDTO
	err := l.db.WithContext(ctx).
		Select("available_quantity").
		First(&dto, "id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NewObjectNotFoundError("product", productID.String())
		}
		return false, err
	}

	return dto.AvailableQuantity >= quantity, nil
}

// Reserve decrements the available quantity by quantity units. The decrement
// only applies when enough units remain at the moment the row is updated;
// otherwise no row matches and ErrInsufficientStock is returned.
func (l *GormStockLedger) Reserve(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := l.db.WithContext(ctx).Exec(`
		UPDATE products
		SET available_quantity = available_quantity - ?
		WHERE id = ? AND available_quantity >= ?
	`, quantity, productID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := l.productExists(ctx, productID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("product", productID.String())
		}
		return product.ErrInsufficientStock
	}

	return nil
}

// Release returns quantity units to stock, undoing a prior reservation.
func (l *GormStockLedger) Release(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := l.db.WithContext(ctx).Exec(`
		UPDATE products
		SET available_quantity = available_quantity + ?
		WHERE id = ?
	`, quantity, productID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", productID.String())
	}

	return nil
}

func (l *GormStockLedger) productExists(ctx context.Context, productID kernel.UUID) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", productID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
