// Package model holds the GORM persistence structs. They mirror tables and never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string          `gorm:"type:varchar(100)"`
	Phone        string          `gorm:"type:varchar(32)"`
	AvatarURL    string          `gorm:"type:text"`
	Locale       string          `gorm:"type:varchar(8)"`
	Role         string          `gorm:"type:varchar(16);not null;index"`
	Balance      decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CanSell      bool            `gorm:"not null"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
