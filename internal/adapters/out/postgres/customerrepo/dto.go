// Package customerrepo provides the persistence-backed customer registry.
// The core only needs to resolve customer identifiers; customer data itself is
// owned elsewhere, so the registry exposes existence checks rather than a full
// repository contract.
package customerrepo

import (
	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for registered customers.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}
