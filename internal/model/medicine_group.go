package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicineGroup classifies medicines (Antibiotiques, Antalgiques, ...).
type MedicineGroup struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Medicines []Medicine `gorm:"foreignKey:GroupID"`
}

func (MedicineGroup) TableName() string { return "medicine_groups" }
