// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate and the
// stock ledger, the single write path for the available quantity.
package productrepo

import (
	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// The available quantity lives in the same row as the catalog attributes, so a
// conditional UPDATE on this row is the atomic stock operation.
type ProductDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code              string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	PriceAmount       int64     `gorm:"type:bigint;not null"`
	PriceCurrency     string    `gorm:"type:varchar(3);not null"`
	AvailableQuantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:                product.ID().Bytes(),
		Code:              product.Code(),
		Name:              product.Name(),
		Description:       product.Description(),
		PriceAmount:       product.Price().Amount(),
		PriceCurrency:     product.Price().Currency().String(),
		AvailableQuantity: product.AvailableQuantity(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAmount, kernel.Currency(dto.PriceCurrency))
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Code, dto.Name, dto.Description, price, dto.AvailableQuantity)
}
