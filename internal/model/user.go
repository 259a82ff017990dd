package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores system accounts with role-based access.
// Role: "user" | "admin" | "pharmacist"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	Gender       string    `gorm:"type:varchar(1)"`
	BirthDate    *time.Time
	Phone        string
	Role         string `gorm:"type:varchar(20);not null;default:'user'"`
	AvatarPath   *string
	IsActive     bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
