package model

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Consumption types and pharmaceutical forms accepted by the catalog.
// Kept as plain strings in the DB; validation happens at the DTO layer.
const (
	ConsumptionOral       = "oral"
	ConsumptionInjection  = "injection"
	ConsumptionTopique    = "topique"
	ConsumptionInhalation = "inhalation"
)

// Medicine is a drug SKU with stock and pricing.
type Medicine struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MedicineID string    `gorm:"uniqueIndex;not null"` // business identifier, e.g. D06ID384920117
	Name       string    `gorm:"index;not null"`
	GroupID    *uuid.UUID `gorm:"type:uuid;index"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index"`

	StockQuantity int `gorm:"not null;default:0"`
	MinStockAlert int `gorm:"not null;default:10"`

	Composition        string
	Manufacturer       string
	ConsumptionType    string `gorm:"type:varchar(20);not null;default:'oral'"`
	PharmaceuticalForm string `gorm:"type:varchar(20);not null;default:'comprime'"`
	ExpirationDate     *time.Time
	Description        string
	DosageInfo         string
	ActiveIngredients  string
	SideEffects        string

	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImagePath     *string

	CreatedByID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Group     *MedicineGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Supplier  *Supplier      `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	CreatedBy *User          `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

func (Medicine) TableName() string { return "medicines" }

// IsLowStock is true when the stock is at or below the alert threshold.
func (m *Medicine) IsLowStock() bool {
	return m.StockQuantity <= m.MinStockAlert
}

// ProfitMargin returns (selling − purchase) / purchase × 100, or zero when the
// purchase price is zero.
func (m *Medicine) ProfitMargin() decimal.Decimal {
	if !m.PurchasePrice.IsPositive() {
		return decimal.Zero
	}
	return m.SellingPrice.Sub(m.PurchasePrice).
		Div(m.PurchasePrice).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

var medicineIDSeq atomic.Uint64

// GenerateMedicineID builds a business identifier from the millisecond clock.
// The last three digits come from a process-wide counter so that rapid
// successive creations within the same millisecond never collide.
func GenerateMedicineID() string {
	ms := uint64(time.Now().UnixMilli())
	seq := medicineIDSeq.Add(1) % 1000
	return fmt.Sprintf("D06ID%06d%03d", ms%1000000, seq)
}
