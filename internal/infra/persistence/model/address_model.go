package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Label         string    `gorm:"type:varchar(100)"`
	RecipientName string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(32)"`
	Country       string    `gorm:"type:varchar(100);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	Street        string    `gorm:"type:text;not null"`
	PostalCode    string    `gorm:"type:varchar(20)"`
	IsDefault     bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
