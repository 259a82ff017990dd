package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a medicine wholesaler or laboratory.
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Phone     string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time

	Medicines []Medicine `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }
