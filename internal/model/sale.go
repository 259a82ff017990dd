package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of a completed transaction.
// PaymentMethod: "cash" | "card" | "mobile" | "check"
// Sales and their items are NEVER updated or deleted once written.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleNumber    string          `gorm:"uniqueIndex;not null"` // VNT-%06d, from a Postgres sequence
	ClientID      *uuid.UUID      `gorm:"type:uuid;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Notes         string
	SoldByID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"index"`

	Items  []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	Client *Client    `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL"`
	SoldBy *User      `gorm:"foreignKey:SoldByID;constraint:OnDelete:SET NULL"`
}

func (Sale) TableName() string { return "sales" }

// SaleItem binds a medicine, a quantity and the price at time of sale.
// Invariant: TotalPrice == Quantity × UnitPrice, and creating the item
// decrements the medicine's stock by Quantity inside the sale transaction.
type SaleItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Medicine *Medicine `gorm:"foreignKey:MedicineID"`
}

func (SaleItem) TableName() string { return "sale_items" }
