package customerrepo

import (
	"context"

	"onlineshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCustomerRegistry implements CustomerRegistry using GORM.
type GormCustomerRegistry struct {
	db *gorm.DB
}

// NewGormCustomerRegistry creates a new GORM customer registry.
func NewGormCustomerRegistry(db *gorm.DB) *GormCustomerRegistry {
	return &GormCustomerRegistry{db: db}
}

// Exists reports whether a customer with the given id is registered.
func (r *GormCustomerRegistry) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
