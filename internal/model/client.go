package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a pharmacy customer. Gender: "M" | "F".
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Gender    string    `gorm:"type:varchar(1);not null"`
	BirthDate *time.Time
	Phone     string `gorm:"index;not null"`
	Email     string `gorm:"index"`
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time

	Sales []Sale `gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
